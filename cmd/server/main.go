package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcdelivery "github.com/mjohndus/sepa-qr-data/internal/delivery/grpc"
	httpdelivery "github.com/mjohndus/sepa-qr-data/internal/delivery/http"
	"github.com/mjohndus/sepa-qr-data/internal/domain/repository"
	"github.com/mjohndus/sepa-qr-data/internal/infrastructure/config"
	"github.com/mjohndus/sepa-qr-data/internal/infrastructure/memory"
	"github.com/mjohndus/sepa-qr-data/internal/infrastructure/postgres"
	"github.com/mjohndus/sepa-qr-data/internal/infrastructure/qrgenerator"
	"github.com/mjohndus/sepa-qr-data/internal/usecase/generateqr"
	"github.com/mjohndus/sepa-qr-data/internal/usecase/issue"
	"github.com/mjohndus/sepa-qr-data/internal/usecase/lookup"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(".")
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	var repo repository.PayloadRepository
	if cfg.DatabaseURL != "" {
		pool, dbErr := postgres.Connect(ctx, cfg.DatabaseURL)
		if dbErr != nil {
			logger.Error("database init failed", "error", dbErr)
			os.Exit(1)
		}
		defer pool.Close()
		repo = postgres.NewPayloadRepo(pool)
	} else {
		logger.Warn("DATABASE_URL not set, issued payloads are kept in memory")
		repo = memory.NewPayloadRepo()
	}

	qrGen := qrgenerator.NewGenerator(cfg.QRSize)

	issueUC := issue.NewUseCase(repo)
	lookupUC := lookup.NewUseCase(repo)
	generateQRUC := generateqr.NewUseCase(qrGen, repo)

	handler := httpdelivery.NewHandler(issueUC, lookupUC, generateQRUC, logger)
	router := httpdelivery.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	grpcSrv := grpcdelivery.NewServer(logger)
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("gRPC server starting", "addr", cfg.GRPCAddr)
		if serveErr := grpcSrv.Serve(lis); serveErr != nil {
			logger.Error("grpc serve failed", "error", serveErr)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", serveErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	grpcSrv.GracefulStop()
}
