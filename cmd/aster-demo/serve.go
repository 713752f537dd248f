package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aster-ui/aster/pkg/middleware"
	"github.com/aster-ui/aster/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr        string
		metrics     bool
		tracing     bool
		maxSessions int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo settings page",
		Long: `Serve the demo settings page.

Examples:
  aster-demo serve
  aster-demo serve --addr=:3000 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, metrics, tracing, maxSessions)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics on /metrics")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Trace event handling with OpenTelemetry")
	cmd.Flags().IntVar(&maxSessions, "max-sessions", 0, "Cap concurrent sessions (0 = unlimited)")

	return cmd
}

func runServe(addr string, metrics, tracing bool, maxSessions int) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := &server.Config{
		Addr:          addr,
		Title:         "aster demo",
		EnableMetrics: metrics,
		MaxSessions:   maxSessions,
		Logger:        log,
	}

	var opts []server.Option
	if tracing {
		opts = append(opts, server.WithEventMiddleware(middleware.OpenTelemetry()))
	}

	srv := server.New(cfg, newSettingsPage, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}
