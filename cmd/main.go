// Package main provides the CLI entrypoint for the meeting slot suggester.
// It wires subcommands (suggest, serve, generate, import, migrate, jwt), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"meetbuddy/internal/config"
	"meetbuddy/internal/fairness"
	"meetbuddy/internal/ranking"
	"meetbuddy/pkg/domain"
	"meetbuddy/pkg/logger"
	"meetbuddy/pkg/metrics"
	"meetbuddy/pkg/storage"
	"meetbuddy/pkg/storage/csvfile"
	"meetbuddy/pkg/storage/postgres"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
		ConnectAttempts:    cfg.Database.ConnectAttempts,
		ConnectDelay:       cfg.Database.ConnectDelay,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getParties resolves both configured parties.
func getParties(ctx context.Context, cfg *config.Config) (domain.Party, domain.Party) {
	a, err := cfg.Party(domain.PartyA)
	if err != nil {
		logger.Fatal(ctx, "could not resolve party A", zap.Error(err))
	}
	b, err := cfg.Party(domain.PartyB)
	if err != nil {
		logger.Fatal(ctx, "could not resolve party B", zap.Error(err))
	}

	return a, b
}

// getRanker builds the ranking service over the configured slot and fairness
// sources. PostgreSQL is opened once when either source needs it. reg receives
// the ranking metrics and may be nil.
func getRanker(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) (*ranking.Service, func()) {
	closeFn := func() {}

	var pg *postgres.PgSQL
	if cfg.Sources.Slots == config.SourcePostgres || cfg.Sources.Fairness == config.SourcePostgres {
		pg, closeFn = getPostgres(ctx, cfg)
	}

	var slotSource storage.SlotSource
	switch cfg.Sources.Slots {
	case config.SourcePostgres:
		slotSource = pg
	default:
		slotSource = csvfile.New(cfg.SlotFiles())
	}

	var tracker fairness.Tracker
	switch cfg.Sources.Fairness {
	case config.SourcePostgres:
		tracker = fairness.Stored{Storage: pg}
	case config.SourceFile:
		tracker = fairness.File{Path: cfg.Fairness.File}
	default:
		tracker = fairness.Static{PartyA: cfg.Fairness.PartyA, PartyB: cfg.Fairness.PartyB}
	}

	a, b := getParties(ctx, cfg)
	logger.Debug(ctx, "ranking sources",
		zap.String("slots", cfg.Sources.Slots), zap.String("fairness", cfg.Sources.Fairness))

	return ranking.New(ranking.Deps{
		Slots:    slotSource,
		Fairness: tracker,
		Metrics:  metrics.NewRanking(reg),
	}, ranking.Options{
		PartyA:        a,
		PartyB:        b,
		SkipMalformed: cfg.Ranking.SkipMalformed,
	}), closeFn
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "meetbuddy",
		Short: "Suggests meeting slots shared by two parties in different time zones",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		suggestCommand(cfg),
		serveCommand(cfg),
		generateCommand(cfg),
		importCommand(cfg),
		migrateCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the -c/--config flag from args so it can be read before
// cobra parses the command line.
func configArgs(args []string) []string {
	for i, arg := range args {
		if arg == "-c" || arg == "--config" {
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}

			return nil
		}
		for _, prefix := range []string{"-c=", "--config="} {
			if v, ok := strings.CutPrefix(arg, prefix); ok {
				return []string{"-c", v}
			}
		}
	}

	return nil
}
