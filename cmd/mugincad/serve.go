package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Hakkology/MuginCAD-sub000/internal/cli"
	httpAdapter "github.com/Hakkology/MuginCAD-sub000/pkg/adapters/http"
	"github.com/Hakkology/MuginCAD-sub000/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Serves drawing sessions over a JSON API described by /openapi.yaml, with Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = env.cfg.HTTP.Addr
		}

		metrics := observability.NewMetrics(prometheus.NewRegistry())
		hooks := metrics.Hooks()
		if env.debug {
			hooks = hooks.Merge(observability.LoggingHooks(env.logger))
		}
		handler, err := httpAdapter.NewHandler(env.manager(hooks),
			httpAdapter.WithLogger(env.logger),
			httpAdapter.WithMetrics(metrics.Handler()),
		)
		if err != nil {
			return fmt.Errorf("failed to build handler: %w", err)
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			env.logger.Info("Starting MuginCAD server", "addr", srv.Addr, "store", env.cfg.Store.Backend)
			serverErrors <- srv.ListenAndServe()
		}()

		sigCtx := cli.NewSignalContext(context.Background())
		defer sigCtx.Cancel()

		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-sigCtx.Done():
			env.logger.Info("Start shutdown", "signal", sigCtx.Signal())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				env.logger.Warn("Graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			env.logger.Info("MuginCAD server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (default from http.addr)")
}
