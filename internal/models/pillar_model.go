package models

import "time"

type Pillar struct {
	ID               int64     `db:"id" json:"id"`
	UserID           int64     `db:"user_id" json:"user_id"`
	Name             string    `db:"name" json:"name"`
	Description      string    `db:"description" json:"description"`
	Color            string    `db:"color" json:"color"`
	TargetPercentage int       `db:"target_percentage" json:"target_percentage"`
	PostCount        int64     `json:"post_count"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

const DefaultPillarColor = "#0A66C2"
