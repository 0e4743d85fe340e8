package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	scanvaultpb "github.com/scanvault/scanvault/gen/proto/scanvault/v1"
	"github.com/scanvault/scanvault/internal/blob"
	"github.com/scanvault/scanvault/internal/common"
	"github.com/scanvault/scanvault/internal/export"
	"github.com/scanvault/scanvault/internal/pdf"
	"github.com/scanvault/scanvault/internal/repository/entdb"
	"github.com/scanvault/scanvault/internal/scan"
	svc "github.com/scanvault/scanvault/internal/server"
	"github.com/scanvault/scanvault/internal/users"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := entdb.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	entc, pool, err := entdb.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer entdb.Close(entc, pool, logger)

	if err := entdb.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	groupsRepo := entdb.NewGroupRepository(entc, logger)
	docsRepo := entdb.NewDocumentRepository(entc, logger)
	usersRepo := entdb.NewUserRepository(entc, logger)

	blobs := blob.NewClient(blob.Config{
		BaseURL:   cfg.Blob.BaseURL,
		APIKey:    cfg.Blob.APIKey,
		APISecret: cfg.Blob.APISecret,
		Folder:    cfg.Blob.Folder,
		Timeout:   cfg.Blob.Timeout,
	}, logger)

	scanSvc := scan.NewService(groupsRepo, docsRepo, blobs, logger)
	usersSvc := users.NewService(usersRepo, groupsRepo, logger)

	writer, err := export.NewLocalWriter(cfg.Export.OutputDir)
	if err != nil {
		logger.Error("failed to prepare export destination", "dir", cfg.Export.OutputDir, "error", err)
		os.Exit(1)
	}
	assembler := pdf.NewAssembler(blobs, logger)
	exportSvc := export.NewService(groupsRepo, docsRepo, assembler, writer, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(svc.RequestIDInterceptor()))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	scanvaultpb.RegisterScanServiceServer(grpcServer, svc.NewScanServer(groupsRepo, docsRepo, scanSvc, logger))
	scanvaultpb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))
	scanvaultpb.RegisterUserServiceServer(grpcServer, svc.NewUserServer(usersSvc, logger))

	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
