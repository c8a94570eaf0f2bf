package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/movies-api/internal/config"
	"github.com/MKhiriev/movies-api/internal/logger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const operationName = "movies-api"

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	addr := cfg.Address()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrListen, addr, err)
	}

	return &httpServer{
		server: &http.Server{
			Handler:           otelhttp.NewHandler(handler, operationName),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

// serve blocks until the listener fails or the server is shut down. A
// regular shutdown is not an error.
func (h *httpServer) serve() error {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// shutdown stops accepting connections and waits for in-flight requests.
// When timeout elapses first, the remaining connections are closed.
// A non-positive timeout waits without limit.
func (h *httpServer) shutdown(timeout time.Duration) error {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Warn().Err(err).Dur("timeout", timeout).Msg("graceful drain did not finish, closing connections")
		if closeErr := h.server.Close(); closeErr != nil {
			h.logger.Error().Err(closeErr).Msg("HTTP server Close")
		}
		return err
	}
	return nil
}

// closeListener releases a socket that was bound but never served.
func (h *httpServer) closeListener() {
	if err := h.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		h.logger.Error().Err(err).Msg("error closing listener")
	}
}
