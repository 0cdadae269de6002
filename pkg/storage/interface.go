// Package storage defines the core storage interfaces that the application relies on.
// It abstracts where availability rows and fairness counters come from so that
// different backends (CSV files, PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"meetbuddy/pkg/domain"
)

// SlotSource provides the raw availability rows of a party. Rows are returned in
// source order; parsing and validation are left to the caller.
type SlotSource interface {
	// PartySlots returns every availability row recorded for the given party.
	PartySlots(ctx context.Context, party domain.PartyID) ([]domain.RawSlot, error)
}

// SlotStorage is a SlotSource that can also be written to.
type SlotStorage interface {
	SlotSource

	// StoreSlots replaces all rows of the given party with slots, keeping their order.
	StoreSlots(ctx context.Context, party domain.PartyID, slots []domain.RawSlot) error
}

// FairnessStorage reads and writes the accumulated inconvenience counters.
type FairnessStorage interface {
	// FairnessSnapshot returns the stored counters. Parties without a stored
	// counter have a burden of zero.
	FairnessSnapshot(ctx context.Context) (domain.FairnessState, error)
	// StoreFairness upserts the counters of both parties.
	StoreFairness(ctx context.Context, state domain.FairnessState) error
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	SlotStorage
	FairnessStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes the provided callback with it, and
	// then commits on success or rolls back if the callback returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
