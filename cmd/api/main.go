package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/cafe-directory/internal/audit"
	"github.com/BruksfildServices01/cafe-directory/internal/config"
	dbpkg "github.com/BruksfildServices01/cafe-directory/internal/db"
	"github.com/BruksfildServices01/cafe-directory/internal/logger"
	"github.com/BruksfildServices01/cafe-directory/internal/observability"
	"github.com/BruksfildServices01/cafe-directory/internal/routes"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	gin.SetMode(cfg.GinMode)

	db := dbpkg.NewDB(cfg, log)
	defer dbpkg.Close(db)

	rdb := dbpkg.NewRedis(cfg, log)
	if rdb != nil {
		defer rdb.Close()
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log, cfg.AuditQueueSize)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Redis:   rdb,
		Audit:   auditDispatcher,
		Metrics: observability.NewHTTPMetrics(nil, "cafe-directory"),
		Log:     log,
	}, cfg)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("graceful shutdown failed", zap.Error(err))
	}

	// handlers are done; flush whatever audit events are still queued
	auditDispatcher.Close()
}
