package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/MKhiriev/movies-api/internal/config"
	"github.com/MKhiriev/movies-api/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	state  atomic.Int32
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	logger *logger.Logger
}

// NewServer binds cfg.Address() and prepares handler to be served on it.
// Binding failures are returned wrapped in ErrListen.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Str("address", cfg.Address()).Msg("creating new server...")

	hs, err := newHTTPServer(handler, cfg, logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &server{
		httpServer:      hs,
		shutdownTimeout: cfg.ShutdownTimeout,
		ctx:             ctx,
		cancel:          cancel,
		done:            make(chan struct{}),
		logger:          logger,
	}, nil
}

func (s *server) RunServer() error {
	if !s.state.CompareAndSwap(int32(StateUnstarted), int32(StateListening)) {
		return fmt.Errorf("%w: state is %s", errServerAlreadyStarted, s.State())
	}
	defer close(s.done)
	defer s.state.Store(int32(StateStopped))

	ctx, stop := signal.NotifyContext(
		s.ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()
	s.logger.Info().Str("address", s.Addr().String()).Msg("Launching HTTP server")

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("%w: %w", ErrServe, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Dur("timeout", s.shutdownTimeout).Msg("stop requested, draining in-flight requests")

	shutdownErr := s.httpServer.shutdown(s.shutdownTimeout)
	if err := <-serveErr; err != nil {
		return fmt.Errorf("%w: %w", ErrServe, err)
	}
	if shutdownErr != nil {
		return fmt.Errorf("%w: %w", ErrShutdown, shutdownErr)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	// never started: release the socket right away
	if s.state.CompareAndSwap(int32(StateUnstarted), int32(StateStopped)) {
		s.cancel()
		s.httpServer.closeListener()
		close(s.done)
		s.logger.Info().Msg("server stopped before start")
		return
	}

	s.cancel()
	<-s.done
}

func (s *server) Addr() net.Addr {
	return s.httpServer.listener.Addr()
}

func (s *server) State() State {
	return State(s.state.Load())
}
