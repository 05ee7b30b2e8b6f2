package models

import "time"

type Comment struct {
	ID             int64     `db:"id" json:"id"`
	UserID         int64     `db:"user_id" json:"user_id"`
	PostID         int64     `db:"post_id" json:"post_id"`
	AuthorName     string    `db:"author_name" json:"author_name"`
	AuthorHeadline string    `db:"author_headline" json:"author_headline"`
	Content        string    `db:"content" json:"content"`
	Sentiment      string    `db:"sentiment" json:"sentiment"`
	Replied        bool      `db:"replied" json:"replied"`
	ReplyContent   string    `db:"reply_content" json:"reply_content"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type Template struct {
	ID        int64      `db:"id" json:"id"`
	UserID    int64      `db:"user_id" json:"user_id"`
	Name      string     `db:"name" json:"name"`
	Category  string     `db:"category" json:"category"`
	Body      string     `db:"body" json:"body"`
	Variables StringList `db:"variables" json:"variables"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

var Sentiments = []string{"positive", "neutral", "negative"}
