// Package ranking runs the suggestion pipeline: load both parties' free slots,
// intersect them, score every common slot and keep the best ones.
//
//go:generate mockgen -package mockranking -source=interface.go -destination=mock/mockranking.go
package ranking

import (
	"context"
	"meetbuddy/pkg/domain"
)

// Request carries caller-provided availability rows. A nil Fairness means the
// configured fairness tracker is consulted.
type Request struct {
	PartyA   []domain.RawSlot
	PartyB   []domain.RawSlot
	Fairness *domain.FairnessState
}

// Ranker suggests meeting slots.
type Ranker interface {
	// Suggest ranks the slots stored in the configured sources.
	Suggest(ctx context.Context) (*Result, error)
	// Rank ranks the rows of req.
	Rank(ctx context.Context, req Request) (*Result, error)
}
