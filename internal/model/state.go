package model

import "time"

// DateLayout is the calendar-date format used for the posting guard.
const DateLayout = "2006-01-02"

// BotState tracks the minimal counters persisted between runs.
type BotState struct {
	DayCount      int       `json:"day_count"`
	StartDate     string    `json:"start_date"`
	LastPostDate  string    `json:"last_post_date"`
	ReachedTarget bool      `json:"reached_target"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PostedOn reports whether a post was already made on the given date.
func (s *BotState) PostedOn(date string) bool {
	return s.LastPostDate != "" && s.LastPostDate == date
}
