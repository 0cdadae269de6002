// Package scoring ranks candidate meeting intervals with a fixed set of
// heuristics evaluated on each party's own wall clock.
package scoring

import (
	"meetbuddy/pkg/domain"
	"time"
)

// Criterion names, in evaluation order.
const (
	CriterionWorkingHours    = "working_hours"
	CriterionDuration        = "duration"
	CriterionPreferredWindow = "preferred_window"
	CriterionDayOfWeek       = "day_of_week"
	CriterionFairness        = "fairness"
	CriterionRecency         = "recency"
	CriterionLunch           = "lunch"
)

// hourRange is a half-open [from, to) range of local clock hours.
type hourRange struct{ from, to int }

func (r hourRange) has(hour int) bool { return r.from <= hour && hour < r.to }

var (
	workingHoursA = hourRange{10, 17} //nolint: gochecknoglobals
	workingHoursB = hourRange{9, 16}  //nolint: gochecknoglobals
	preferredA    = hourRange{11, 16} //nolint: gochecknoglobals
	preferredB    = hourRange{10, 15} //nolint: gochecknoglobals
	lunchA        = hourRange{13, 14} //nolint: gochecknoglobals
)

// Contribution is the outcome of one criterion. Reason is empty for branches
// that do not explain themselves.
type Contribution struct {
	Criterion string `json:"criterion"`
	Points    int    `json:"points"`
	Reason    string `json:"reason,omitempty"`
}

// Scorer evaluates candidates for a pair of parties. It holds no mutable state
// and may be shared between goroutines.
type Scorer struct {
	PartyA domain.Party
	PartyB domain.Party
}

// New creates a Scorer for the two parties.
func New(a, b domain.Party) Scorer {
	return Scorer{PartyA: a, PartyB: b}
}

// Score returns the total score of iv and the reasons of the branches taken,
// in criterion order. now is only used for its calendar date.
func (s Scorer) Score(iv domain.Interval, fairness domain.FairnessState, now time.Time) (int, []string) {
	total := 0
	reasons := make([]string, 0, 7) //nolint: mnd
	for _, c := range s.Breakdown(iv, fairness, now) {
		total += c.Points
		if c.Reason != "" {
			reasons = append(reasons, c.Reason)
		}
	}

	return total, reasons
}

// Candidate scores iv and wraps the result with its discovery index.
func (s Scorer) Candidate(index int, iv domain.Interval, fairness domain.FairnessState, now time.Time) domain.ScoredCandidate {
	score, reasons := s.Score(iv, fairness, now)

	return domain.ScoredCandidate{Interval: iv, Index: index, Score: score, Reasons: reasons}
}

// Breakdown returns the contribution of every criterion.
func (s Scorer) Breakdown(iv domain.Interval, fairness domain.FairnessState, now time.Time) []Contribution {
	startA := s.PartyA.Local(iv.Start)
	startB := s.PartyB.Local(iv.Start)
	hourA, hourB := startA.Hour(), startB.Hour()

	return []Contribution{
		workingHours(hourA, hourB),
		duration(iv),
		preferredWindow(hourA, hourB),
		dayOfWeek(startA.Weekday()),
		s.fairness(fairness, hourA, hourB),
		recency(startA, now),
		lunch(hourA),
	}
}

func workingHours(hourA, hourB int) Contribution {
	a, b := workingHoursA.has(hourA), workingHoursB.has(hourB)
	switch {
	case a && b:
		return Contribution{CriterionWorkingHours, 15, "Ideal working hours for both teams"}
	case a || b:
		return Contribution{CriterionWorkingHours, 8, "Comfortable for one team"}
	default:
		return Contribution{CriterionWorkingHours, -10, "Early/late meeting for one team"}
	}
}

func duration(iv domain.Interval) Contribution {
	minutes := int(iv.Duration() / time.Minute)
	switch {
	case minutes >= 60:
		return Contribution{CriterionDuration, 10, "Full 1-hour meeting window"}
	case minutes >= 45:
		return Contribution{CriterionDuration, 7, "Good 45-minute slot"}
	case minutes >= 30:
		return Contribution{CriterionDuration, 4, "Minimum acceptable slot length"}
	default:
		return Contribution{CriterionDuration, -5, "Too short slot"}
	}
}

func preferredWindow(hourA, hourB int) Contribution {
	a, b := preferredA.has(hourA), preferredB.has(hourB)
	switch {
	case a && b:
		return Contribution{CriterionPreferredWindow, 12, "Inside preferred meeting window"}
	case a || b:
		return Contribution{CriterionPreferredWindow, 7, "Partial preference match"}
	default:
		return Contribution{CriterionPreferredWindow, -8, "Outside preference window"}
	}
}

func dayOfWeek(day time.Weekday) Contribution {
	switch day {
	case time.Tuesday, time.Wednesday, time.Thursday:
		return Contribution{CriterionDayOfWeek, 5, "Mid-week meetings preferred"}
	case time.Monday:
		return Contribution{CriterionDayOfWeek, 2, "Monday acceptable"}
	case time.Friday:
		return Contribution{Criterion: CriterionDayOfWeek}
	default:
		return Contribution{CriterionDayOfWeek, -20, "Weekend is not recommended"}
	}
}

// fairness favours the party that has carried more inconvenience, but only
// when the candidate sits inside that party's preferred window.
func (s Scorer) fairness(state domain.FairnessState, hourA, hourB int) Contribution {
	switch state.Heavier() {
	case domain.PartyB:
		if preferredB.has(hourB) {
			return Contribution{CriterionFairness, 20, "Balances past inconvenience for " + s.PartyB.Name}
		}
	case domain.PartyA:
		if preferredA.has(hourA) {
			return Contribution{CriterionFairness, 20, "Balances past inconvenience for " + s.PartyA.Name}
		}
	}

	return Contribution{Criterion: CriterionFairness}
}

// recency rewards candidates close to today. A candidate in the past gets the
// lowest bonus.
func recency(start, now time.Time) Contribution {
	days := DaysBetween(now, start)
	switch {
	case days < 0:
		return Contribution{CriterionRecency, 1, ""}
	case days <= 3:
		return Contribution{CriterionRecency, 6, "Soonest available slot"}
	case days <= 7:
		return Contribution{CriterionRecency, 4, ""}
	case days <= 14:
		return Contribution{CriterionRecency, 2, ""}
	default:
		return Contribution{CriterionRecency, 1, ""}
	}
}

func lunch(hourA int) Contribution {
	if lunchA.has(hourA) {
		return Contribution{Criterion: CriterionLunch}
	}

	return Contribution{CriterionLunch, 3, "Avoids lunch hour"}
}

// DaysBetween returns the number of calendar days from the date of from to the
// date of to, each read in its own location.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	return int(t.Sub(f).Hours() / 24) //nolint: mnd
}
