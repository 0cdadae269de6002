package main

import (
	"context"
	"fmt"
	"meetbuddy/internal/config"
	"meetbuddy/internal/fairness"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/logger"
	"meetbuddy/pkg/storage"
	"meetbuddy/pkg/storage/csvfile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCommand constructs the 'import' subcommand that copies the CSV
// availability of both parties, and optionally the fairness counters, into
// PostgreSQL in a single transaction.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Imports CSV availability and fairness counters into PostgreSQL",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			withFairness, _ := cmd.Flags().GetBool("fairness")
			fairnessFile, _ := cmd.Flags().GetString("fairness-file")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			parties := map[domain.PartyID][]domain.RawSlot{}
			for id, path := range cfg.SlotFiles() {
				rows, err := csvfile.ReadFile(path)
				if err != nil {
					logger.Fatal(ctx, "could not read slots", zap.String("path", path), zap.Error(err))
				}
				parties[id] = rows
			}

			var state *domain.FairnessState
			if withFairness {
				tracker := fairness.Tracker(fairness.Static{PartyA: cfg.Fairness.PartyA, PartyB: cfg.Fairness.PartyB})
				if fairnessFile != "" {
					tracker = fairness.File{Path: fairnessFile}
				}
				s, err := tracker.Snapshot(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not read fairness counters", zap.Error(err))
				}
				state = &s
			}

			err := strg.WithTx(ctx, func(tx storage.AllStorage) error {
				for _, id := range []domain.PartyID{domain.PartyA, domain.PartyB} {
					if err := tx.StoreSlots(ctx, id, parties[id]); err != nil {
						return fmt.Errorf("could not store slots of party %s: %w", id, err)
					}
				}
				if state != nil {
					if err := tx.StoreFairness(ctx, *state); err != nil {
						return fmt.Errorf("could not store fairness counters: %w", err)
					}
				}

				return nil
			})
			if err != nil {
				logger.Fatal(ctx, "import failed", zap.Error(err))
			}

			logger.Info(ctx, "import finished",
				zap.Int("partyA", len(parties[domain.PartyA])),
				zap.Int("partyB", len(parties[domain.PartyB])),
				zap.Bool("fairness", state != nil))
		},
	}

	cmd.Flags().Bool("fairness", false, "Also store the fairness counters")
	cmd.Flags().String("fairness-file", "", "YAML fairness file to import instead of the configured static values")

	return cmd
}
