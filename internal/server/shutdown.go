package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/lessonhub/internal/module"
)

// waitForShutdown blocks until an interrupt or terminate signal is received.
func waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}

// Shutdown stops modules in reverse boot order, then the HTTP server and the bus.
func (s *Server) Shutdown(ctx context.Context) error {
	module.Stop(ctx, s.modules)
	s.cancel()

	err := s.E.Shutdown(ctx)
	if cerr := s.Bus.Close(); cerr != nil {
		slog.Error("Failed to close event bus", "error", cerr)
	}
	return err
}
