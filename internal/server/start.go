package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Start runs the server until SIGINT/SIGTERM, then shuts everything down in
// dependency order: HTTP first, then the hub and the bus.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go s.hub.Run()

	if err := s.notifier.Start(ctx, s.bus); err != nil {
		return err
	}
	if err := s.fallback.Watch(ctx); err != nil {
		// The catalog still serves its last good load without the watcher.
		slog.Warn("Offline catalog watcher unavailable", "error", err)
	}

	go func() {
		slog.Info("Server starting", "addr", s.cfg.GetAddr())
		if err := s.echo.Start(s.cfg.GetAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err)
	}

	s.hub.Stop()
	if err := s.bus.Close(); err != nil {
		slog.Error("Closing event bus failed", "error", err)
	}
	return nil
}
