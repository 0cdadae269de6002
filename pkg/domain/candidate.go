package domain

// ScoredCandidate is an overlap interval together with its heuristic score.
// Score has no fixed range; it is only meaningful relative to other candidates.
type ScoredCandidate struct {
	Interval Interval `json:"interval"`
	// Index is the position at which the overlap finder discovered the candidate.
	// Ranking uses it to keep equal scores in discovery order.
	Index   int      `json:"-"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}
