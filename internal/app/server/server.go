// Package server runs a tool server's HTTP listener until the process is
// signalled to stop.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ijalalfrz/travel-search-mcp-service/internal/app/config"
)

const shutdownTimeout = 10 * time.Second

// Run serves handler on the configured port and blocks until SIGINT, SIGTERM
// or SIGQUIT, or until the listener fails.
func Run(cfg config.Config, handler http.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cancel, cfg, handler)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cancel context.CancelFunc, cfg config.Config, handler http.Handler) {
	server := NewHTTPServer(cfg, handler)

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

// NewHTTPServer builds the listener for handler from the HTTP settings.
func NewHTTPServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Handler:      handler,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}
}
