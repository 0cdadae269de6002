package slots

import "meetbuddy/pkg/domain"

// FindOverlaps returns every strict pairwise intersection of a and b, in the
// order of a nested loop over a then b. Intervals that only touch at an
// endpoint do not overlap. Each boundary of an emitted interval keeps the
// location of the input interval it was taken from.
//
// The nested loop is O(len(a)*len(b)); inputs are tens to a few thousand slots.
func FindOverlaps(a, b []domain.Interval) []domain.Interval {
	var out []domain.Interval
	for _, x := range a {
		for _, y := range b {
			latestStart := x.Start
			if y.Start.After(latestStart) {
				latestStart = y.Start
			}

			earliestEnd := x.End
			if y.End.Before(earliestEnd) {
				earliestEnd = y.End
			}

			if latestStart.Before(earliestEnd) {
				out = append(out, domain.Interval{Start: latestStart, End: earliestEnd})
			}
		}
	}

	return out
}
