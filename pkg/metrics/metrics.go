// Package metrics declares the Prometheus collectors shared by the ranking
// pipeline and the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// CandidateBuckets bucket the number of overlap candidates found by a run.
var CandidateBuckets = []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000, 5000} //nolint: gochecknoglobals

// Ranking outcomes used as the "outcome" label.
const (
	OutcomeRanked        = "ranked"
	OutcomeNoCommonSlots = "no_common_slots"
	OutcomeError         = "error"
)

// Ranking holds the collectors updated by every ranking run.
type Ranking struct {
	// Duration observes the wall time of a run, labelled by outcome.
	Duration *prometheus.HistogramVec
	// Candidates observes how many overlap candidates a run scored.
	Candidates prometheus.Histogram
	// MalformedRows counts rows skipped by the lenient parse policy, per party.
	MalformedRows *prometheus.CounterVec
}

// NewRanking creates the ranking collectors and registers them with reg. A nil
// registerer leaves them unregistered, which is handy in tests.
func NewRanking(reg prometheus.Registerer) *Ranking {
	factory := promauto.With(reg)

	return &Ranking{
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "meetbuddy",
			Subsystem: "ranking",
			Name:      "run_duration_seconds",
			Help:      "Duration of ranking runs.",
			Buckets:   DefaultBuckets,
		}, []string{"outcome"}),
		Candidates: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "meetbuddy",
			Subsystem: "ranking",
			Name:      "candidates",
			Help:      "Number of common free slots scored per run.",
			Buckets:   CandidateBuckets,
		}),
		MalformedRows: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meetbuddy",
			Subsystem: "ranking",
			Name:      "malformed_rows_total",
			Help:      "Availability rows skipped because they could not be parsed.",
		}, []string{"party"}),
	}
}
