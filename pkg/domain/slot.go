package domain

import "time"

// RawSlot is a free-time record as it appears in a source, before any parsing.
type RawSlot struct {
	// Date is the calendar date in 2006-01-02 form.
	Date string `json:"date"`
	// Start is the local start time-of-day in 15:04 form.
	Start string `json:"start"`
	// End is the local end time-of-day in 15:04 form.
	End string `json:"end"`
	// Timezone is an IANA zone identifier such as Europe/Berlin.
	Timezone string `json:"timezone"`
}

// Interval is a zone-aware time range. Valid intervals satisfy End > Start.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Valid reports whether the interval ends strictly after it starts.
func (i Interval) Valid() bool {
	return i.End.After(i.Start)
}

// Contains reports whether other lies within i (boundaries inclusive).
func (i Interval) Contains(other Interval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// Equal compares two intervals by instant, ignoring their locations.
func (i Interval) Equal(other Interval) bool {
	return i.Start.Equal(other.Start) && i.End.Equal(other.End)
}
