package models

import "time"

type AIProject struct {
	ID             int64     `db:"id" json:"id"`
	UserID         int64     `db:"user_id" json:"user_id"`
	Name           string    `db:"name" json:"name"`
	Description    string    `db:"description" json:"description"`
	Tone           string    `db:"tone" json:"tone"`
	ContentType    string    `db:"content_type" json:"content_type"`
	TargetAudience string    `db:"target_audience" json:"target_audience"`
	Guidelines     string    `db:"guidelines" json:"guidelines"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type AISession struct {
	ID          int64        `db:"id" json:"id"`
	ProjectID   int64        `db:"project_id" json:"project_id"`
	UserID      int64        `db:"user_id" json:"user_id"`
	PostIdea    string       `db:"post_idea" json:"post_idea"`
	ContentType string       `db:"content_type" json:"content_type"`
	Status      string       `db:"status" json:"status"`
	Versions    []*AIVersion `json:"versions,omitempty"`
	Assets      []*AIAsset   `json:"assets,omitempty"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

type AIVersion struct {
	ID        int64     `db:"id" json:"id"`
	SessionID int64     `db:"session_id" json:"session_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	Position  int       `db:"position" json:"position"`
	Selected  bool      `db:"selected" json:"selected"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type AIAsset struct {
	ID        int64     `db:"id" json:"id"`
	SessionID int64     `db:"session_id" json:"session_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	AssetType string    `db:"asset_type" json:"asset_type"`
	Style     string    `db:"style" json:"style"`
	Prompt    string    `db:"prompt" json:"prompt"`
	URL       string    `db:"url" json:"url"`
	Width     int       `db:"width" json:"width"`
	Height    int       `db:"height" json:"height"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const (
	SessionStatusDraft     = "draft"
	SessionStatusGenerated = "generated"
	SessionStatusFailed    = "failed"
)

var Tones = []string{"professional", "casual", "inspirational", "educational", "humorous", "authoritative"}

var ContentTypes = []string{"text", "carousel", "article", "poll", "video", "image"}

var AssetTypes = []string{"image", "carousel", "banner", "infographic"}
