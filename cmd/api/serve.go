package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

type httpServer interface {
	Start(address string) error
	Shutdown(ctx context.Context) error
}

// serve runs srv until it fails or a signal arrives, then shuts it down. Both paths
// return to the caller so deferred cleanup still runs.
func serve(ctx context.Context, srv httpServer, addr string, signals <-chan os.Signal) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var result *multierror.Error
	select {
	case sig := <-signals:
		zerolog.Ctx(ctx).Info().Stringer("signal", sig).Msg("signal received, starting graceful shutdown")
	case err, ok := <-serverErr:
		if ok {
			result = multierror.Append(result, fmt.Errorf("HTTP server: %w", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		result = multierror.Append(result, fmt.Errorf("HTTP server shutdown: %w", err))
	}

	return result.ErrorOrNil()
}
