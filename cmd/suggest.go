package main

import (
	"context"
	"fmt"
	"io"
	"meetbuddy/internal/config"
	"meetbuddy/internal/invite"
	"meetbuddy/internal/ranking"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/logger"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// suggestCommand constructs the 'suggest' subcommand that ranks the configured
// sources once and prints the best slots.
func suggestCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Prints the top 2 meeting slots shared by both parties",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			explain, _ := cmd.Flags().GetBool("explain")
			icsDir, _ := cmd.Flags().GetString("ics-dir")
			title, _ := cmd.Flags().GetString("title")
			if title == "" {
				title = cfg.Invite.Title
			}

			ranker, closeFn := getRanker(ctx, cfg, nil)
			defer closeFn()

			res, err := ranker.Suggest(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not suggest meeting slots", zap.Error(err))
			}

			a, b := getParties(ctx, cfg)
			printResult(cmd.OutOrStdout(), res, a, b, explain)

			if icsDir == "" {
				return
			}
			paths, err := writeInvites(icsDir, res, title)
			if err != nil {
				logger.Fatal(ctx, "could not write invites", zap.Error(err))
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Invite written to %s\n", p) //nolint: errcheck
			}
		},
	}

	cmd.Flags().Bool("explain", false, "Print the contribution of every scoring criterion")
	cmd.Flags().String("ics-dir", "", "Directory to write meeting_slot_<rank>.ics invites to")
	cmd.Flags().String("title", "", "Invite title (defaults to invite.title)")

	return cmd
}

// printResult renders res for a terminal.
func printResult(w io.Writer, res *ranking.Result, a, b domain.Party, explain bool) {
	header := color.New(color.FgCyan, color.Bold)
	rank := color.New(color.FgGreen, color.Bold)
	muted := color.New(color.Faint)

	if res.NoCommonSlots {
		color.New(color.FgYellow).Fprintln(w, res.Message) //nolint: errcheck

		return
	}

	header.Fprintln(w, res.Message) //nolint: errcheck
	for _, e := range res.Entries {
		fmt.Fprintln(w) //nolint: errcheck
		rank.Fprintf(w, "#%d  Score: %d\n", e.Rank, e.Score) //nolint: errcheck
		fmt.Fprintf(w, "  %s: %s\n", a.Name, e.PartyATime) //nolint: errcheck
		fmt.Fprintf(w, "  %s: %s\n", b.Name, e.PartyBTime) //nolint: errcheck
		for _, r := range e.Reasons {
			fmt.Fprintf(w, "  - %s\n", r) //nolint: errcheck
		}
		if !explain {
			continue
		}
		for _, c := range e.Breakdown {
			muted.Fprintf(w, "    %-17s %+4d  %s\n", c.Criterion, c.Points, c.Reason) //nolint: errcheck
		}
	}
	if res.Skipped > 0 {
		fmt.Fprintln(w) //nolint: errcheck
		color.New(color.FgYellow).Fprintf(w, "%d malformed rows skipped\n", res.Skipped) //nolint: errcheck
	}
}

// writeInvites writes one invite per ranked entry into dir and returns the
// file paths.
func writeInvites(dir string, res *ranking.Result, title string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint: mnd
		return nil, fmt.Errorf("could not create %s: %w", dir, err)
	}

	paths := make([]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		path := filepath.Join(dir, invite.Filename(e.Rank))
		data := invite.ICS(e.Interval.Start, e.Interval.End, title)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil { //nolint: gosec, mnd
			return nil, fmt.Errorf("could not write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
