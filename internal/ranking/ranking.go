package ranking

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"meetbuddy/internal/fairness"
	"meetbuddy/internal/scoring"
	"meetbuddy/internal/slots"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/logger"
	"meetbuddy/pkg/metrics"
	"meetbuddy/pkg/storage"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "meetbuddy/internal/ranking"

var _ Ranker = (*Service)(nil)

// Deps are the collaborators of a Service.
type Deps struct {
	// Slots provides the stored availability rows used by Suggest.
	Slots storage.SlotSource
	// Fairness provides the burden counters when a request carries none.
	Fairness fairness.Tracker
	// Parser converts rows into intervals. Nil selects a parser backed by the
	// process-wide zone cache.
	Parser *slots.Parser
	// Metrics receives run statistics. Nil leaves them unregistered.
	Metrics *metrics.Ranking
}

// Options tune a Service.
type Options struct {
	PartyA domain.Party
	PartyB domain.Party
	// SkipMalformed ignores rows that cannot be parsed instead of failing the run.
	// Every skipped row is logged at warn level and counted.
	SkipMalformed bool
	// Now returns the reference time used for recency. Defaults to time.Now.
	Now func() time.Time
}

// Service implements Ranker. It keeps no state between runs and is safe for
// concurrent use.
type Service struct {
	deps   Deps
	opts   Options
	scorer scoring.Scorer
	tracer trace.Tracer
}

// New creates a Service.
func New(deps Deps, opts Options) *Service {
	if deps.Parser == nil {
		deps.Parser = slots.NewParser(nil)
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.NewRanking(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		deps:   deps,
		opts:   opts,
		scorer: scoring.New(opts.PartyA, opts.PartyB),
		tracer: otel.Tracer(tracerName),
	}
}

// Suggest implements Ranker.
func (s *Service) Suggest(ctx context.Context) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "ranking.Suggest")
	defer span.End()

	req, err := s.load(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, time.Now(), err)
	}

	return s.rank(ctx, span, req)
}

// Rank implements Ranker.
func (s *Service) Rank(ctx context.Context, req Request) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "ranking.Rank")
	defer span.End()

	return s.rank(ctx, span, req)
}

func (s *Service) load(ctx context.Context) (Request, error) {
	if s.deps.Slots == nil {
		return Request{}, errors.New("no slot source configured")
	}

	rowsA, err := s.deps.Slots.PartySlots(ctx, domain.PartyA)
	if err != nil {
		return Request{}, fmt.Errorf("could not load slots of %s: %w", s.opts.PartyA.Name, err)
	}
	rowsB, err := s.deps.Slots.PartySlots(ctx, domain.PartyB)
	if err != nil {
		return Request{}, fmt.Errorf("could not load slots of %s: %w", s.opts.PartyB.Name, err)
	}

	return Request{PartyA: rowsA, PartyB: rowsB}, nil
}

func (s *Service) rank(ctx context.Context, span trace.Span, req Request) (*Result, error) {
	started := time.Now()
	ctx = logger.WithComponent(ctx, "ranking")

	state, err := s.snapshot(ctx, req.Fairness)
	if err != nil {
		return nil, s.fail(ctx, span, started, err)
	}

	intervalsA, skippedA, err := s.parse(ctx, s.opts.PartyA, req.PartyA)
	if err != nil {
		return nil, s.fail(ctx, span, started, err)
	}
	intervalsB, skippedB, err := s.parse(ctx, s.opts.PartyB, req.PartyB)
	if err != nil {
		return nil, s.fail(ctx, span, started, err)
	}

	overlaps := slots.FindOverlaps(intervalsA, intervalsB)
	span.SetAttributes(
		attribute.Int("ranking.rows.a", len(req.PartyA)),
		attribute.Int("ranking.rows.b", len(req.PartyB)),
		attribute.Int("ranking.candidates", len(overlaps)),
	)
	s.deps.Metrics.Candidates.Observe(float64(len(overlaps)))

	result := &Result{
		Candidates: len(overlaps),
		Skipped:    skippedA + skippedB,
	}
	if len(overlaps) == 0 {
		result.Message = MessageNoCommonSlots
		result.NoCommonSlots = true
		s.observe(started, metrics.OutcomeNoCommonSlots)
		logger.Info(ctx, "no common free slots",
			zap.Int("intervalsA", len(intervalsA)), zap.Int("intervalsB", len(intervalsB)))

		return result, nil
	}

	now := s.opts.Now()
	candidates := make([]domain.ScoredCandidate, len(overlaps))
	for i, iv := range overlaps {
		candidates[i] = s.scorer.Candidate(i, iv, state, now)
	}
	slices.SortStableFunc(candidates, func(a, b domain.ScoredCandidate) int {
		return cmp.Or(cmp.Compare(b.Score, a.Score), cmp.Compare(a.Index, b.Index))
	})

	top := candidates[:min(TopN, len(candidates))]
	result.Message = MessageRanked
	result.Entries = make([]Entry, 0, len(top))
	for i, c := range top {
		result.Entries = append(result.Entries, Entry{
			Rank:       i + 1,
			Score:      c.Score,
			Reasons:    c.Reasons,
			PartyATime: FormatRange(c.Interval, s.opts.PartyA.Location),
			PartyBTime: FormatRange(c.Interval, s.opts.PartyB.Location),
			Interval:   c.Interval,
			Breakdown:  s.scorer.Breakdown(c.Interval, state, now),
		})
	}

	s.observe(started, metrics.OutcomeRanked)
	logger.Info(ctx, "ranked common free slots",
		zap.Int("candidates", len(candidates)),
		zap.Int("topScore", result.Entries[0].Score),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

func (s *Service) snapshot(ctx context.Context, override *domain.FairnessState) (domain.FairnessState, error) {
	if override != nil {
		if err := fairness.Validate(*override); err != nil {
			return domain.FairnessState{}, err
		}

		return *override, nil
	}
	if s.deps.Fairness == nil {
		return fairness.Default().Snapshot(ctx)
	}

	state, err := s.deps.Fairness.Snapshot(ctx)
	if err != nil {
		return domain.FairnessState{}, fmt.Errorf("could not read fairness counters: %w", err)
	}

	return state, nil
}

// parse applies the configured parse policy to the rows of one party. It
// returns the number of rows skipped.
func (s *Service) parse(ctx context.Context, party domain.Party, rows []domain.RawSlot) ([]domain.Interval, int, error) {
	if !s.opts.SkipMalformed {
		intervals, err := s.deps.Parser.Parse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("slots of %s: %w", party.Name, err)
		}

		return intervals, 0, nil
	}

	intervals, bad := s.deps.Parser.ParseLenient(rows)
	for _, e := range bad {
		logger.Warn(ctx, "skipping malformed slot",
			zap.String("party", party.Name),
			zap.Int("row", e.Row),
			zap.String("field", e.Field),
			zap.String("value", e.Value),
			zap.Error(e.Err))
	}
	if len(bad) > 0 {
		s.deps.Metrics.MalformedRows.WithLabelValues(string(party.ID)).Add(float64(len(bad)))
	}

	return intervals, len(bad), nil
}

func (s *Service) fail(ctx context.Context, span trace.Span, started time.Time, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.observe(started, metrics.OutcomeError)
	logger.Warn(ctx, "ranking failed", zap.Error(err))

	return err
}

func (s *Service) observe(started time.Time, outcome string) {
	s.deps.Metrics.Duration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
