package server

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-shipment-tracker/internal/config"
	myGRPC "github.com/MKhiriev/go-shipment-tracker/internal/handler/grpc"
	"github.com/MKhiriev/go-shipment-tracker/internal/logger"

	"google.golang.org/grpc"
)

const healthRefreshInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	done     chan struct{}
	stopOnce sync.Once

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.ConnectionTimeout(cfg.RequestTimeout))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		done:            make(chan struct{}),
		logger:          logger,
	}, nil
}

// serve blocks until the server fails or is stopped by Shutdown.
func (g *grpcServer) serve() error {
	go g.refreshHealth()

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server on %s: %w", g.gRPCNetListener.Addr(), err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopOnce.Do(func() { close(g.done) })
	g.handler.Shutdown()
	g.server.GracefulStop()
}

// refreshHealth re-runs the health probe until Shutdown.
func (g *grpcServer) refreshHealth() {
	ticker := time.NewTicker(healthRefreshInterval)
	defer ticker.Stop()

	for {
		g.handler.Refresh(context.Background())

		select {
		case <-g.done:
			return
		case <-ticker.C:
		}
	}
}
