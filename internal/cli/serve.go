package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/computor"
	"github.com/aretw0/computor/internal/presentation/tui"
	httpAdapter "github.com/aretw0/computor/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Serve listens on addr and serves the HTTP API until ctx is cancelled.
func Serve(ctx context.Context, app *App, addr string, status io.Writer) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ServeListener(ctx, app, ln, status)
}

// ServeListener is Serve on an existing listener. The listener is closed on return.
func ServeListener(ctx context.Context, app *App, ln net.Listener, status io.Writer) error {
	opts := []httpAdapter.Option{httpAdapter.WithLogger(app.Logger)}
	if app.Config.Server.Metrics {
		opts = append(opts, httpAdapter.WithMetricsHandler(promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{})))
	}

	srv := &http.Server{
		Handler:           httpAdapter.NewHandler(app.Engine, opts...),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if status != nil {
		tui.PrintBanner(status, strings.TrimSpace(computor.Version))
	}
	printSystemMessage(status, "Listening on %s", ln.Addr())

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		app.Logger.Info("Start shutdown", "reason", ctx.Err())

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error("Graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		printSystemMessage(status, "Server stopped gracefully")
		return nil
	}
}
