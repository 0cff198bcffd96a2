package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/chordsense/chordsense/pkg/adapters/lifecycle"
	"github.com/chordsense/chordsense/pkg/core"
	"github.com/chordsense/chordsense/pkg/site"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the blog over HTTP",
	Long: `Serve the home page, the blog index at /blog and posts at /blog/<slug>.
Every request reads the content directory again, so edits show up on reload.
With --watch, content changes are also logged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, svc, err := loadSite()
		if err != nil {
			return fmt.Errorf("initializing site: %w", err)
		}

		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}

		handler := site.NewHandler(svc, site.Info{
			Title:       cfg.Site.Title,
			Description: cfg.Site.Description,
		}, slog.Default())
		router, err := site.NewRouter(handler)
		if err != nil {
			return fmt.Errorf("building router: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveWatch {
			if err := logChanges(ctx, svc); err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			slog.Info("serving blog", "addr", addr, "content", cfg.Content.Dir)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// logChanges logs every content event until ctx ends.
func logChanges(ctx context.Context, svc *core.Service) error {
	events, err := svc.Watch(ctx)
	if err != nil {
		return err
	}

	src := lifecycle.NewSource(events)
	if err := src.Start(ctx); err != nil {
		return err
	}

	go func() {
		for e := range src.Events() {
			slog.Info("content changed", "event", e.String())
		}
	}()
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address (overrides config)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Log content changes")
}
