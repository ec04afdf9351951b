package domain

import "time"

// DateLayout is the wire form of an activity's logical date.
const DateLayout = "2006-01-02"

// Activity is a dated, rich-text journal entry owned by exactly one User.
// Text is a trusted HTML blob rendered verbatim downstream; this system
// performs no sanitization pass.
type Activity struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Date   string `json:"date"`
	Text   string `json:"text"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// LocalDate formats t's wall-clock components as YYYY-MM-DD. The logical
// activity date must never be derived from a UTC-shifted conversion, or it
// drifts a day across time zones.
func LocalDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.ParseInLocation(DateLayout, s, time.Local)
	return err == nil
}
