package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	slotsTable = "availability_slots"
)

// PartySlots returns the rows of the given party ordered by their import position.
func (p *PgSQL) PartySlots(ctx context.Context, party domain.PartyID) ([]domain.RawSlot, error) {
	var rows []PgSlot
	if err := p.Builder.From(slotsTable).
		Where(goqu.C("party").Eq(string(party))).
		Order(goqu.C("position").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not get slots of party %s from pg: %w", party, err)
	}

	return pgSlotsToDomain(rows), nil
}

// StoreSlots replaces the rows of the given party. Outside a transaction the
// delete and insert run inside a fresh one.
func (p *PgSQL) StoreSlots(ctx context.Context, party domain.PartyID, slots []domain.RawSlot) error {
	if _, inTx := p.DB.(*sql.Tx); !inTx {
		return p.WithTx(ctx, func(s storage.AllStorage) error {
			return s.StoreSlots(ctx, party, slots)
		})
	}

	if _, err := p.Builder.Delete(slotsTable).
		Where(goqu.C("party").Eq(string(party))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete slots of party %s: %w", party, err)
	}

	if len(slots) == 0 {
		return nil
	}

	if _, err := p.Builder.Insert(slotsTable).
		Rows(domainSlotsToPg(party, slots)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store slots of party %s into pg: %w", party, err)
	}

	return nil
}
