package postgres

import (
	"context"
	"fmt"
	"meetbuddy/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	fairnessTable = "fairness"
)

// FairnessSnapshot reads the burden of both parties. A party without a row has
// a burden of zero.
func (p *PgSQL) FairnessSnapshot(ctx context.Context) (domain.FairnessState, error) {
	var rows []PgFairness
	if err := p.Builder.From(fairnessTable).
		Where(goqu.C("party").In(string(domain.PartyA), string(domain.PartyB))).
		ScanStructsContext(ctx, &rows); err != nil {
		return domain.FairnessState{}, fmt.Errorf("could not get fairness counters from pg: %w", err)
	}

	var state domain.FairnessState
	for _, row := range rows {
		switch domain.PartyID(row.Party) {
		case domain.PartyA:
			state.PartyA = row.Burden
		case domain.PartyB:
			state.PartyB = row.Burden
		}
	}

	return state, nil
}

// StoreFairness upserts the burden of both parties.
func (p *PgSQL) StoreFairness(ctx context.Context, state domain.FairnessState) error {
	rows := []PgFairness{
		{Party: string(domain.PartyA), Burden: state.PartyA},
		{Party: string(domain.PartyB), Burden: state.PartyB},
	}

	if _, err := p.Builder.Insert(fairnessTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("party", goqu.Record{
			"burden":     goqu.L("EXCLUDED.burden"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store fairness counters into pg: %w", err)
	}

	return nil
}
