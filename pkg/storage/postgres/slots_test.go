package postgres_test

import (
	"context"
	"errors"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreSlots(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	india := []domain.RawSlot{
		{Date: "2025-06-11", Start: "14:00", End: "15:30", Timezone: "Asia/Kolkata"},
		{Date: "2025-06-10", Start: "09:00", End: "10:30", Timezone: "Asia/Kolkata"},
		{Date: "not-a-date", Start: "09:00", End: "10:30", Timezone: "Asia/Kolkata"},
	}
	germany := []domain.RawSlot{
		{Date: "2025-06-11", Start: "10:00", End: "11:00", Timezone: "Europe/Berlin"},
	}

	require.NoError(t, pgSQL.StoreSlots(ctx, domain.PartyA, india))
	require.NoError(t, pgSQL.StoreSlots(ctx, domain.PartyB, germany))

	t.Run("rows come back in import order", func(t *testing.T) {
		got, err := pgSQL.PartySlots(ctx, domain.PartyA)
		require.NoError(t, err)
		require.Equal(t, india, got)
	})

	t.Run("parties are isolated", func(t *testing.T) {
		got, err := pgSQL.PartySlots(ctx, domain.PartyB)
		require.NoError(t, err)
		require.Equal(t, germany, got)
	})

	t.Run("store replaces previous rows", func(t *testing.T) {
		require.NoError(t, pgSQL.StoreSlots(ctx, domain.PartyB, germany[:0]))

		got, err := pgSQL.PartySlots(ctx, domain.PartyB)
		require.NoError(t, err)
		require.Empty(t, got)

		got, err = pgSQL.PartySlots(ctx, domain.PartyA)
		require.NoError(t, err)
		require.Len(t, got, len(india))
	})
}

func TestPgSQL_StoreSlots_RollsBackWithTx(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	rows := []domain.RawSlot{{Date: "2025-06-11", Start: "10:00", End: "11:00", Timezone: "Europe/Berlin"}}
	require.NoError(t, pgSQL.StoreSlots(ctx, domain.PartyB, rows))

	err := pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
		if err := s.StoreSlots(ctx, domain.PartyB, nil); err != nil {
			return err
		}

		return errors.New("abort import")
	})
	require.Error(t, err)

	got, err := pgSQL.PartySlots(ctx, domain.PartyB)
	require.NoError(t, err)
	require.Equal(t, rows, got)
}

func TestPgSQL_PartySlots_Empty(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	got, err := pgSQL.PartySlots(context.Background(), domain.PartyA)
	require.NoError(t, err)
	require.Empty(t, got)
}
