package domain

import "time"

// PartyID identifies one of the two sides of a meeting.
type PartyID string

const (
	// PartyA is the first party. Its local calendar date drives the day-of-week score.
	PartyA PartyID = "A"
	// PartyB is the second party.
	PartyB PartyID = "B"
)

// Party describes one side of the meeting: a display name and the zone whose
// wall clock is used when scoring and formatting candidates.
type Party struct {
	ID       PartyID
	Name     string
	Location *time.Location
}

// Local returns t in the party's wall-clock time.
func (p Party) Local(t time.Time) time.Time {
	return t.In(p.Location)
}
