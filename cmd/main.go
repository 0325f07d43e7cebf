package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	reservationv1 "github.com/GulfDevInnovations/royal-academy/internal/api/reservation/v1"
	"github.com/GulfDevInnovations/royal-academy/internal/config"
	"github.com/GulfDevInnovations/royal-academy/internal/db"
	"github.com/GulfDevInnovations/royal-academy/internal/httpapi"
	"github.com/GulfDevInnovations/royal-academy/internal/model"
	"github.com/GulfDevInnovations/royal-academy/internal/repository"
	"github.com/GulfDevInnovations/royal-academy/internal/service"
	"github.com/GulfDevInnovations/royal-academy/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("[core] %v", err)
	}
}

func run() error {
	// 1. Config from env (and .env when present).
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Tracing.
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Printf("[core] telemetry shutdown: %v", err)
		}
	}()

	// 3. Database and migrations.
	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("init db: %w", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Printf("[core] close db: %v", err)
		}
	}()

	if err := model.AutoMigrate(gormDB); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	store := repository.NewStore(gormDB)

	// 4. gRPC: reservation service, health and reflection.
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	reservationv1.RegisterReservationServiceServer(grpcServer, service.NewReservationServer(store))

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(reservationv1.ReservationService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}

	// 5. HTTP API for the web front end.
	httpServer := httpapi.NewServer(&httpapi.Options{
		Address:        cfg.HTTPAddr,
		DisableReqLogs: cfg.DisableReqLogs,
		Auth:           cfg.Auth,
		Store:          store,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[core] gRPC server listening on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		log.Printf("[core] HTTP server listening on %s", cfg.HTTPAddr)
		if err := httpServer.Start(); err != nil {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	// 6. Graceful shutdown on signal or on the first server failure.
	g.Go(func() error {
		<-gctx.Done()
		log.Println("[core] shutting down...")

		healthServer.Shutdown()
		grpcServer.GracefulStop()

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Stop(sctx)
	})

	return g.Wait()
}
