package models

import "time"

type Lead struct {
	ID             int64     `db:"id" json:"id"`
	UserID         int64     `db:"user_id" json:"user_id"`
	Name           string    `db:"name" json:"name"`
	Company        string    `db:"company" json:"company"`
	JobTitle       string    `db:"job_title" json:"job_title"`
	Email          string    `db:"email" json:"email"`
	LinkedInURL    string    `db:"linkedin_url" json:"linkedin_url"`
	Status         string    `db:"status" json:"status"`
	Source         string    `db:"source" json:"source"`
	Notes          string    `db:"notes" json:"notes"`
	EstimatedValue float64   `db:"estimated_value" json:"estimated_value"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

type Event struct {
	ID          int64      `db:"id" json:"id"`
	UserID      int64      `db:"user_id" json:"user_id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	EventType   string     `db:"event_type" json:"event_type"`
	Location    string     `db:"location" json:"location"`
	URL         string     `db:"url" json:"url"`
	Status      string     `db:"status" json:"status"`
	StartsAt    time.Time  `db:"starts_at" json:"starts_at"`
	EndsAt      *time.Time `db:"ends_at" json:"ends_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

var LeadStatuses = []string{"new", "contacted", "qualified", "proposal", "won", "lost"}

var EventTypes = []string{"webinar", "conference", "meetup", "workshop", "networking", "other"}

var EventStatuses = []string{"planned", "registered", "attended", "cancelled"}
