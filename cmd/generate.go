package main

import (
	"context"
	"fmt"
	"meetbuddy/internal/config"
	"meetbuddy/pkg/logger"
	"meetbuddy/pkg/storage/csvfile"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// generateCommand constructs the 'generate' subcommand that writes sample
// availability CSV files for both parties.
func generateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Writes sample availability CSV files for both parties",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			fromFlag, _ := cmd.Flags().GetString("from")
			days, _ := cmd.Flags().GetInt("days")

			from, err := time.Parse(time.DateOnly, fromFlag)
			if err != nil {
				logger.Fatal(ctx, "invalid --from date", zap.String("from", fromFlag), zap.Error(err))
			}

			for _, p := range []config.Party{cfg.Parties.A, cfg.Parties.B} {
				if p.SlotsFile == "" {
					logger.Fatal(ctx, "party has no slots file configured", zap.String("party", p.Name))
				}

				rows := csvfile.Generate(from, days, p.Timezone, csvfile.SampleWindows)
				if err := csvfile.WriteFile(p.SlotsFile, rows); err != nil {
					logger.Fatal(ctx, "could not write sample slots", zap.String("path", p.SlotsFile), zap.Error(err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d slots written to %s\n", p.Name, len(rows), p.SlotsFile) //nolint: errcheck
			}
		},
	}

	cmd.Flags().String("from", csvfile.SampleStart.Format(time.DateOnly), "First generated day (YYYY-MM-DD)")
	cmd.Flags().Int("days", csvfile.SampleDays, "Number of generated days")

	return cmd
}
