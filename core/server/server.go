package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrStopped is returned by Run when the app stops serving before ctx is cancelled.
var ErrStopped = errors.New("server stopped unexpectedly")

// Run serves app on ln until ctx is cancelled, then shuts the app down,
// giving the in-flight request up to timeout to complete. Connections still
// open after that are abandoned and do not make Run fail.
// The listener is owned by Run from here on and closed on return.
func Run(ctx context.Context, app *fiber.App, ln net.Listener, timeout time.Duration, logg *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStopped, err)
		}
		return ErrStopped
	case <-ctx.Done():
	}

	logg.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		// Connections that are still open after timeout, idle ones included, are abandoned.
		if !errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		logg.Warn("Abandoning open connections", zap.Int32("connections", app.Server().GetOpenConnectionsCount()))
	}
	// Shutdown only closes listeners the app has started serving on.
	_ = ln.Close()

	select {
	case <-errCh:
	case <-time.After(timeout):
	}
	return nil
}
