package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"locallibrary/database"
	"locallibrary/internal/config"
	"locallibrary/internal/http-api/middleware"
	"locallibrary/internal/http-api/repository"
	"locallibrary/internal/http-api/router"
	"locallibrary/internal/http-api/service"
	"locallibrary/internal/logging"
	"locallibrary/internal/session"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Setup structured logging
	logger := logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db, logger); err != nil {
		logger.Error("database_migrate_failed", "error", err)
		os.Exit(1)
	}

	// Session store
	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	rdb, err := session.NewRedisClient(startCtx, cfg.RedisURL)
	cancel()
	if err != nil {
		logger.Error("redis_connect_failed", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	sessions := session.NewManager(
		session.NewRedisStore(rdb, cfg.SessionTTL),
		cfg.SessionSecret,
		cfg.SessionTTL,
		cfg.IsProduction(),
	)

	// Repositories and services
	users := repository.NewUserRepository(db)
	books := repository.NewBookRepository(db)
	instances := repository.NewBookInstanceRepository(db)
	authors := repository.NewAuthorRepository(db)
	genres := repository.NewGenreRepository(db)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)
	stopCleanup := make(chan struct{})
	limiter.StartCleanup(10*time.Minute, stopCleanup)
	defer close(stopCleanup)

	engine, err := router.New(router.Deps{
		Config:    cfg,
		Logger:    logger,
		Sessions:  sessions,
		Limiter:   limiter,
		Auth:      service.NewAuthService(users, cfg),
		Catalog:   service.NewCatalogService(books, instances, authors, genres),
		Books:     service.NewBookService(books, instances, authors, genres),
		Authors:   service.NewAuthorService(authors, books),
		Genres:    service.NewGenreService(genres, books),
		Instances: service.NewInstanceService(instances, books),
		Health: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error { return sqlDB.PingContext(gctx) })
			g.Go(func() error { return rdb.Ping(gctx).Err() })
			return g.Wait()
		},
	})
	if err != nil {
		logger.Error("router_setup_failed", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("http_server_starting", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logger.Info("received_shutdown_signal")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("http_server_shutdown_failed", "error", err)
		}
		logger.Info("server_stopped_gracefully")
	case err := <-errChan:
		logger.Error("server_error", "error", err.Error())
		os.Exit(1)
	}
}
