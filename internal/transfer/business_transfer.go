package transfer

import "time"

type LeadInput struct {
	Name           string  `json:"name"`
	Company        string  `json:"company"`
	JobTitle       string  `json:"job_title"`
	Email          string  `json:"email"`
	LinkedInURL    string  `json:"linkedin_url"`
	Status         string  `json:"status"`
	Source         string  `json:"source"`
	Notes          string  `json:"notes"`
	EstimatedValue float64 `json:"estimated_value"`
}

type EventInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EventType   string     `json:"event_type"`
	Location    string     `json:"location"`
	URL         string     `json:"url"`
	Status      string     `json:"status"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}
