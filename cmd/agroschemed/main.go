package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/chandrashekharddev/agroscheme/gen/proto/agroscheme/v1"
	"github.com/chandrashekharddev/agroscheme/internal/apply"
	"github.com/chandrashekharddev/agroscheme/internal/async"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/eligibility"
	"github.com/chandrashekharddev/agroscheme/internal/export"
	"github.com/chandrashekharddev/agroscheme/internal/extract"
	repo "github.com/chandrashekharddev/agroscheme/internal/repository"
	svc "github.com/chandrashekharddev/agroscheme/internal/server"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	// Ping DB to ensure connectivity
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// gRPC server
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	farmerRepo := repo.NewFarmerRepository(entc, logger)
	schemeRepo := repo.NewSchemeRepository(entc, logger)
	documentRepo := repo.NewDocumentRepository(entc, logger)
	applicationRepo := repo.NewApplicationRepository(entc, logger)
	notificationRepo := repo.NewNotificationRepository(entc, logger)

	registry := extract.NewRegistry(
		extract.WithBaselineConfidence(cfg.Extract.BaselineConfidence),
	)

	applySvc := apply.NewService(
		farmerRepo,
		schemeRepo,
		documentRepo,
		applicationRepo,
		notificationRepo,
		eligibility.DefaultKeywords(),
		logger,
	)

	queue := async.NewSweepQueue(applySvc, logger,
		async.WithWorkers(cfg.Sweep.Workers),
		async.WithQueueSize(cfg.Sweep.QueueSize),
		async.WithSweepTimeout(cfg.Sweep.SweepTimeout),
	)

	exporter := export.NewService(applicationRepo, farmerRepo, schemeRepo, logger)

	v1.RegisterFarmersServiceServer(grpcServer, svc.NewFarmersServer(farmerRepo, notificationRepo, logger))
	v1.RegisterSchemesServiceServer(grpcServer, svc.NewSchemesServer(schemeRepo, queue, logger))
	v1.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentsServer(registry, farmerRepo, documentRepo, logger))
	v1.RegisterApplicationsServiceServer(grpcServer, svc.NewApplicationsServer(applySvc, applicationRepo, exporter, queue, logger))

	// Register gRPC health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("agroschemed listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
