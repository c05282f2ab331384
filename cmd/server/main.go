package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/qs-lzh/hotel-booking/config"
	"github.com/qs-lzh/hotel-booking/internal/app"
	"github.com/qs-lzh/hotel-booking/internal/cache"
	"github.com/qs-lzh/hotel-booking/internal/database"
	"github.com/qs-lzh/hotel-booking/internal/handler"
	"github.com/qs-lzh/hotel-booking/internal/mq"
	"github.com/qs-lzh/hotel-booking/internal/util"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := util.NewLogger(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}

	redisCache, err := cache.NewRedisCache(cfg.CacheURL, cfg.BookingCacheTTL)
	if err != nil {
		return err
	}

	mqConn, err := mq.NewMQConn(cfg.MQURL)
	if err != nil {
		return err
	}

	publisher, err := mq.NewPublisher(mqConn)
	if err != nil {
		return err
	}
	defer publisher.Close()

	application := app.New(cfg, db, redisCache, mqConn, publisher, logger)
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("failed to close app", zap.Error(err))
		}
	}()

	if err := application.Init(); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.NewRouter(application),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
