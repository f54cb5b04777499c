package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/finrecords/financial-records-api/internal/audit"
	"github.com/finrecords/financial-records-api/internal/config"
	dbpkg "github.com/finrecords/financial-records-api/internal/db"
	"github.com/finrecords/financial-records-api/internal/logging"
	"github.com/finrecords/financial-records-api/internal/routes"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Fail fast: never accept traffic without a reachable database.
	db, err := dbpkg.New(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	dispatcher := audit.NewDispatcher(audit.New(db))

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, logger, dispatcher)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening",
			zap.String("addr", cfg.Addr()),
			zap.String("database", cfg.DBName),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	dispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
