package ranking

import (
	"meetbuddy/internal/scoring"
	"meetbuddy/pkg/domain"
	"time"
)

const (
	// TopN is the number of suggestions returned by a run.
	TopN = 2

	// MessageRanked is the status message of a run that found common slots.
	MessageRanked = "Top 2 Suggested Meeting Slots"
	// MessageNoCommonSlots is the status message of a run without any overlap.
	MessageNoCommonSlots = "No common free slots"

	// TimeLayout formats the start of a suggestion in a party's zone.
	TimeLayout = "2006-01-02 15:04"
	// ClockLayout formats the end of a suggestion in a party's zone.
	ClockLayout = "15:04"
)

// Entry is one ranked suggestion.
type Entry struct {
	// Rank is 1-based.
	Rank    int
	Score   int
	Reasons []string
	// PartyATime and PartyBTime render the interval on each party's wall clock,
	// e.g. "2025-06-11 13:30 → 14:30".
	PartyATime string
	PartyBTime string
	// Interval holds the raw boundaries for calendar export.
	Interval domain.Interval
	// Breakdown lists the contribution of every scoring criterion.
	Breakdown []scoring.Contribution
}

// Result is the outcome of a ranking run.
type Result struct {
	Message string
	// NoCommonSlots is set when the parties share no free time at all.
	NoCommonSlots bool
	// Candidates is the number of overlaps that were scored.
	Candidates int
	// Skipped counts malformed rows ignored under the lenient parse policy.
	Skipped int
	Entries []Entry
}

// Entry returns the suggestion with the given 1-based rank.
func (r *Result) Entry(rank int) (Entry, bool) {
	if r == nil || rank < 1 || rank > len(r.Entries) {
		return Entry{}, false
	}

	return r.Entries[rank-1], true
}

// FormatRange renders iv in loc as "2006-01-02 15:04 → 15:04". The end is
// printed as a bare clock time even when it falls on the next day.
func FormatRange(iv domain.Interval, loc *time.Location) string {
	return iv.Start.In(loc).Format(TimeLayout) + " → " + iv.End.In(loc).Format(ClockLayout)
}
