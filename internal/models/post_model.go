package models

import "time"

type Post struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"user_id"`
	PillarID    *int64     `db:"pillar_id" json:"pillar_id"`
	AccountID   *int64     `db:"account_id" json:"account_id"`
	Title       string     `db:"title" json:"title"`
	Content     string     `db:"content" json:"content"`
	Status      string     `db:"status" json:"status"`
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduled_at"`
	PublishedAt *time.Time `db:"published_at" json:"published_at"`
	ExternalID  string     `db:"external_id" json:"external_id"`
	Hashtags    StringList `db:"hashtags" json:"hashtags"`
	Mentions    StringList `db:"mentions" json:"mentions"`
	Media       StringList `db:"media" json:"media"`
	Likes       int64      `db:"likes" json:"likes"`
	Comments    int64      `db:"comments" json:"comments"`
	Shares      int64      `db:"shares" json:"shares"`
	Impressions int64      `db:"impressions" json:"impressions"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

type MediaAsset struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	FileName  string    `db:"file_name" json:"file_name"`
	FileType  string    `db:"file_type" json:"file_type"`
	FileSize  int64     `db:"file_size" json:"file_size"`
	FileURL   string    `db:"file_url" json:"file_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
	PostStatusArchived  = "archived"
)

var PostStatuses = []string{
	PostStatusDraft,
	PostStatusScheduled,
	PostStatusPublished,
	PostStatusFailed,
	PostStatusArchived,
}
