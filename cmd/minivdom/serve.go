package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/minivdom/internal/config"
	"github.com/vango-dev/minivdom/internal/demo"
	"github.com/vango-dev/minivdom/internal/errors"
	"github.com/vango-dev/minivdom/pkg/devpanel"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port    int
		host    string
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dev panel",
		Long: `Start the dev panel HTTP server.

The panel renders the demo app into an in-memory target and shows
its HTML, the previous and current trees, and a live mutation log.

Examples:
  minivdom serve
  minivdom serve --port=8080
  minivdom serve --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Serve.Port = port
			}
			if host != "" {
				cfg.Serve.Host = host
			}
			if metrics {
				cfg.Metrics.Enabled = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics at /metrics")

	return cmd
}

func runServe(ctx context.Context, out io.Writer, cfg *config.Config) error {
	addr := net.JoinHostPort(cfg.Serve.Host, strconv.Itoa(cfg.Serve.Port))
	logger := newLogger(cfg, os.Stderr)

	s := newSession(cfg, logger, false)
	if err := s.app.Mount(); err != nil {
		return err
	}

	panelConfig := devpanel.Config{
		Driver:    s.app,
		Actions:   demo.Actions,
		Container: s.container,
		Panel:     s.panel,
		Logger:    logger,
	}
	if s.registry != nil {
		panelConfig.Metrics = promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
		panelConfig.MetricsRegistry = s.registry
		panelConfig.MetricsNamespace = cfg.Metrics.Namespace
	}
	panel := devpanel.New(panelConfig)

	srv := &http.Server{
		Addr:              addr,
		Handler:           panel.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	success(out, "Dev panel running at http://%s", addr)
	if s.registry != nil {
		info(out, "Metrics at http://%s/metrics", addr)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.New("E302").Wrap(err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		fmt.Fprintln(out, "\n  Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
