package models

import "time"

// RunEvent is a scheduled community run where merchandise is collected
// in person.
type RunEvent struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	FormattedDate string    `json:"formatted_date"`
	IsPast        bool      `json:"is_past"`
}

// FormatRunDate renders a run date the way the site displays it.
func FormatRunDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
