package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-appointments/internal/audit"
	"github.com/BruksfildServices01/barber-appointments/internal/clock"
	"github.com/BruksfildServices01/barber-appointments/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-appointments/internal/db"
	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-appointments/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/barber-appointments/internal/infra/repository"
	"github.com/BruksfildServices01/barber-appointments/internal/logging"
	"github.com/BruksfildServices01/barber-appointments/internal/routes"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// INFRA
	// ======================================================
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}

	var slotCache domain.SlotCache = cache.Noop{}
	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("redis unavailable, slot cache disabled", slog.Any("error", err))
		} else {
			defer client.Close()
			slotCache = cache.NewSlotCache(client, cfg.SlotCacheTTL, logger)
		}
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, cfg.AuditQueueSize, logger)
	defer auditDispatcher.Close()

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Dependencies{
		Config:       cfg,
		Logger:       logger,
		Clock:        clock.NewRealClock(),
		Appointments: infraRepo.NewAppointmentGormRepository(db),
		Catalog:      infraRepo.NewCatalogGormRepository(db),
		Directory:    infraRepo.NewDirectoryGormRepository(db),
		SlotCache:    slotCache,
		Audit:        auditDispatcher,
		AuditLogs:    auditLogger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", slog.String("addr", cfg.Addr()), slog.String("timezone", cfg.Timezone))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
