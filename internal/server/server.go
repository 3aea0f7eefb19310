package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	"github.com/MKhiriev/go-shipment-tracker/internal/handler"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	background Background
	logger     *logger.Logger
}

// NewServer creates a server for every handler in handlers. background may
// be nil.
func NewServer(handlers *handler.Handlers, background Background, cfg config.Server, logger *logger.Logger) (Server, error) {
	servers := &server{
		background: background,
		logger:     logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		gRPCServer, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = gRPCServer
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("error running server")
	}
}

// Shutdown stops the transports first so no new work is accepted, then
// waits for in-flight background passes.
func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
	if s.background != nil {
		s.background.Stop()
	}
}

// run starts the background jobs and every transport, then blocks until a
// stop signal arrives or a transport fails. Everything is shut down in both
// cases; the transport failure is returned.
func (s *server) run() error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if s.background != nil {
		if err := s.background.Start(ctx); err != nil {
			return fmt.Errorf("error starting background workers: %w", err)
		}
	}

	failed := make(chan error, 2)
	if s.httpServer != nil {
		go func() { failed <- s.httpServer.serve() }()
	}
	if s.gRPCServer != nil {
		go func() { failed <- s.gRPCServer.serve() }()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-failed:
		s.logger.Err(runErr).Str("func", "*server.run").Msg("transport stopped unexpectedly")
	}

	s.Shutdown()
	s.logger.Info().Msg("server shut down")

	return runErr
}
