// Package fairness provides read-only snapshots of how much scheduling
// inconvenience each party has absorbed in past meetings.
//
//go:generate mockgen -package mockfairness -source=fairness.go -destination=mock/mockfairness.go
package fairness

import (
	"context"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/serrors"
	"meetbuddy/pkg/storage"
)

// Default burdens used when nothing else is configured.
const (
	DefaultBurdenA = 12
	DefaultBurdenB = 19
)

// Tracker returns the current fairness counters. Implementations never
// mutate the counters while serving a snapshot.
type Tracker interface {
	Snapshot(ctx context.Context) (domain.FairnessState, error)
}

// Validate rejects negative burdens.
func Validate(state domain.FairnessState) error {
	if state.PartyA < 0 || state.PartyB < 0 {
		return serrors.With(serrors.ErrBadRequest,
			"fairness burdens must not be negative (partyA=%d, partyB=%d)", state.PartyA, state.PartyB)
	}

	return nil
}

// Static serves fixed counters.
type Static domain.FairnessState

// Default returns the built-in counters.
func Default() Static {
	return Static{PartyA: DefaultBurdenA, PartyB: DefaultBurdenB}
}

// Snapshot implements Tracker.
func (s Static) Snapshot(context.Context) (domain.FairnessState, error) {
	state := domain.FairnessState(s)
	if err := Validate(state); err != nil {
		return domain.FairnessState{}, err
	}

	return state, nil
}

// Stored reads the counters from a storage backend.
type Stored struct {
	Storage storage.FairnessStorage
}

// Snapshot implements Tracker.
func (s Stored) Snapshot(ctx context.Context) (domain.FairnessState, error) {
	state, err := s.Storage.FairnessSnapshot(ctx)
	if err != nil {
		return domain.FairnessState{}, err //nolint: wrapcheck
	}
	if err := Validate(state); err != nil {
		return domain.FairnessState{}, err
	}

	return state, nil
}
