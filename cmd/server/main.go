package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"talentsync/internal/config"
	"talentsync/internal/handler"
	"talentsync/internal/logging"
	"talentsync/internal/port"
	"talentsync/internal/repository/postgres"
	"talentsync/internal/router"
	"talentsync/internal/service"
	s3storage "talentsync/internal/storage/s3"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.Configure(logrus.StandardLogger(), cfg.Log, os.Stderr)
	log := logrus.StandardLogger()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	employeeRepo := postgres.NewEmployeeRepo(db)

	// Initialize storage; only needed when uploads are archived
	var storage port.ObjectStorage
	if cfg.Import.ArchiveUploads {
		storage, err = s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize services
	importSvc := service.NewEmployeeImportService(employeeRepo, storage, cfg.S3.Bucket, cfg.Import, log)
	employeeSvc := service.NewEmployeeService(employeeRepo)

	// Initialize handlers
	importH := handler.NewImportHandler(importSvc)
	employeeH := handler.NewEmployeeHandler(employeeSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(log, cfg.CORS.AllowedOrigins, importH, employeeH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Server.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
