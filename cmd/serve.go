package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"themeconf/internal/api"
	"themeconf/internal/api/handler/v1handler"
	"themeconf/pkg/logger"
	"themeconf/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) setupServer(ctx context.Context) (func(ctx context.Context), error) {
	registry := prometheus.NewRegistry()
	mp, err := api.NewMeterProvider(registry)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	m, err := metrics.NewResolver(mp.Meter(metrics.ScopeName))
	if err != nil {
		return nil, fmt.Errorf("could not create resolver metrics: %w", err)
	}

	r, catalog, err := a.newResolver(ctx, false, m)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "palette catalog loaded", zap.Int("palettes", catalog.Len()))

	server, err := api.NewServer(api.Deps{
		Deps:     v1handler.Deps{Resolver: r, Catalog: catalog},
		Registry: registry,
	}, api.NewOptions(a.cfg))
	if err != nil {
		return nil, fmt.Errorf("could not create webserver: %w", err)
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
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
		if err := mp.Shutdown(ctx); err != nil {
			logger.Warn(ctx, "could not stop meter provider", zap.Error(err))
		}
	}, nil
}

// serveCommand constructs the 'serve' subcommand that runs the HTTP API until
// SIGINT or SIGTERM.
func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the resolver HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopWebserver, err := a.setupServer(ctx)
			if err != nil {
				return err
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			return nil
		},
	}

	return cmd
}
