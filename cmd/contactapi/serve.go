package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/osa911/contactapi/internal/server"
	"github.com/osa911/contactapi/internal/telemetry"
	"github.com/osa911/contactapi/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the contact form API",
	Long: `Run the HTTP API serving GET /api/health and POST /api/contact.

Example:
  contactapi serve              # Port from PORT (default 3000)
  contactapi serve --port 8080  # Override the port`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Close()

		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		logger.Info("Starting %s %s in %s mode", server.ServiceName, version.Info(), cfg.Environment)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		shutdownTracing, err := telemetry.Init(ctx, cfg.OTLPEndpoint, server.ServiceName, version.Version)
		if err != nil {
			return err
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				logger.Warn("Failed to flush traces: %v", err)
			}
		}()

		srv, err := server.NewServer(cfg, server.Dependencies{Logger: logger})
		if err != nil {
			return err
		}
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
}
