package transfer

import "time"

type PillarInput struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	Color            string `json:"color"`
	TargetPercentage int    `json:"target_percentage"`
}

type PostInput struct {
	PillarID    *int64     `json:"pillar_id"`
	AccountID   *int64     `json:"account_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Hashtags    []string   `json:"hashtags"`
	Mentions    []string   `json:"mentions"`
	Media       []string   `json:"media"`
}

type ScheduleInput struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type MetricsInput struct {
	Likes       int64 `json:"likes"`
	Comments    int64 `json:"comments"`
	Shares      int64 `json:"shares"`
	Impressions int64 `json:"impressions"`
}

type CommentInput struct {
	PostID         int64  `json:"post_id"`
	AuthorName     string `json:"author_name"`
	AuthorHeadline string `json:"author_headline"`
	Content        string `json:"content"`
	Sentiment      string `json:"sentiment"`
	Replied        bool   `json:"replied"`
	ReplyContent   string `json:"reply_content"`
}

type TemplateInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Body     string `json:"body"`
}
