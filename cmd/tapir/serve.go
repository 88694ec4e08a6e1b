package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/turingtools/tapir"
	"github.com/turingtools/tapir/internal/adapters/httpapi"
	redisstore "github.com/turingtools/tapir/internal/adapters/redis"
	"github.com/turingtools/tapir/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve <specification>",
	Short: "Serve the machine over HTTP",
	Long: `Loads the specification and exposes it on an HTTP API: POST /evaluate runs
one tape, GET /machine returns the definition, /metrics exposes prometheus
counters. With --redis, evaluation results are persisted and browsable under
/runs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		redisAddr, _ := cmd.Flags().GetString("redis")
		stepLimit, _ := cmd.Flags().GetInt("step-limit")

		reg := prometheus.NewRegistry()
		metrics := observability.New(reg)

		sim, err := tapir.Load(args[0],
			tapir.WithLogger(logger),
			tapir.WithRunHooks(metrics.Hooks()),
			tapir.WithStepLimit(stepLimit),
		)
		if err != nil {
			return err
		}

		opts := []httpapi.Option{
			httpapi.WithLogger(logger),
			httpapi.WithRegistry(reg),
			httpapi.WithErrorObserver(metrics.ObserveError),
		}
		if redisAddr != "" {
			store := redisstore.New(redisAddr, "", 0)
			defer store.Close()
			opts = append(opts, httpapi.WithStore(store))
		}

		srv := &http.Server{
			Addr:    addr,
			Handler: httpapi.NewHandler(sim, opts...),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("serving machine", "addr", addr, "spec", sim.Name)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
		case <-ctx.Done():
			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().String("redis", "", "Redis address for run-record persistence (empty = disabled)")
	serveCmd.Flags().Int("step-limit", 100000, "Abort an evaluation after this many steps (0 = unbounded)")
}
