package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobdash-backend/config"
	v1 "go-jobdash-backend/internal/delivery/http/v1"
	"go-jobdash-backend/internal/scheduler"
	"go-jobdash-backend/internal/usecase"
	"go-jobdash-backend/pkg/cache"
	"go-jobdash-backend/pkg/logger"
	"go-jobdash-backend/pkg/saramin"
)

// @title           Job Dashboard Backend API
// @version         1.0
// @description     Backend for the job posting dashboard using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job dashboard backend", "port", cfg.Port)

	// 3. Setup Cache Store
	substrate, cleanup, err := buildSubstrate(cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize cache substrate", "error", err)
		os.Exit(1)
	}
	if cleanup != nil {
		defer cleanup()
	}

	store := cache.NewStore(substrate, logger.Log)
	if !store.Available() {
		// The UI degrades to pure in-memory operation; warn once and move on.
		logger.Log.Warn("Cache substrate unavailable - persistence disabled for this session")
	}

	// 4. Setup Remote Client (nil keeps every call on fallback data)
	var api usecase.SaraminAPI
	if cfg.SaraminAPIURL != "" {
		client, err := saramin.NewClient(saramin.Config{BaseURL: cfg.SaraminAPIURL})
		if err != nil {
			logger.Log.Error("Failed to build saramin client", "error", err)
			os.Exit(1)
		}
		api = client
	}

	// 5. Setup UseCases
	validate := validator.New()
	jobUC := usecase.NewJobUsecase(api, store, validate, cfg.ViewportWidth, logger.Log)
	actionUC := usecase.NewActionUsecase(api, store, logger.Log)
	bookmarkUC := usecase.NewBookmarkUsecase(store, logger.Log)
	cacheUC := usecase.NewCacheUsecase(store, logger.Log)

	// 6. Setup Scheduler
	sched := scheduler.New(jobUC, store, cfg.RefreshIntervalMinutes, cfg.SweepIntervalMinutes, logger.Log)
	if err := sched.Start(context.Background()); err != nil {
		logger.Log.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:      jobUC,
		ActionUC:   actionUC,
		BookmarkUC: bookmarkUC,
		CacheUC:    cacheUC,
		Config:     cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
}

// buildSubstrate picks the key-value layer from config. cleanup is non-nil
// when the substrate holds external connections.
func buildSubstrate(cfg *config.Config) (cache.Substrate, func(), error) {
	switch cfg.CacheBackend {
	case "redis":
		sub, err := cache.NewRedisSubstrate(context.Background(), cfg.RedisURL, "jobdash")
		if err != nil {
			return nil, nil, err
		}
		return sub, func() { _ = sub.Close() }, nil
	case "memory":
		return cache.NewMemorySubstrate(), nil, nil
	default:
		sub, err := cache.NewFileSubstrate(cfg.CacheDir)
		if err != nil {
			return nil, nil, err
		}
		return sub, nil, nil
	}
}
