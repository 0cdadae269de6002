package main

import (
	"context"
	"errors"
	"meetbuddy/internal/api"
	"meetbuddy/internal/api/handler/v1handler"
	"meetbuddy/internal/config"
	"meetbuddy/internal/ranking"
	"meetbuddy/pkg/logger"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, ranker ranking.Ranker) func(ctx context.Context) {
	a, b := getParties(ctx, cfg)
	server, err := api.NewServer(ctx, api.Deps{
		Deps: v1handler.Deps{
			Ranker: ranker,
			PartyA: a,
			PartyB: b,
			Title:  cfg.Invite.Title,
		},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the suggestion API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ranker, closeFn := getRanker(ctx, cfg, prometheus.DefaultRegisterer)
			defer closeFn()

			stopWebserver := setupServer(ctx, cfg, ranker)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
