package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aromaSpa/app/echo-server/router"
	"aromaSpa/business/catalog"
	"aromaSpa/business/preference"
	"aromaSpa/business/recommend"
	"aromaSpa/internal/middleware"
	"aromaSpa/internal/repository/embedded"
	"aromaSpa/internal/repository/memory"
	psqlRepo "aromaSpa/internal/repository/postgres"
	redisRepo "aromaSpa/internal/repository/redis"
	"aromaSpa/internal/rest"
	"aromaSpa/pkg/config"
	"aromaSpa/pkg/database"
	redisdb "aromaSpa/pkg/database/redis"
	"aromaSpa/pkg/logger"
	"aromaSpa/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Aroma Spa API", "version", cfg.App.Version)

	metrics.Init()

	// Static catalog + concern taxonomy, embedded in the binary
	catalogRepo, err := embedded.NewCatalogRepository()
	if err != nil {
		logger.Fatal("Failed to load embedded catalog", "error", err)
	}

	// Durable rating log is optional; without it ratings live for the
	// process lifetime only, which satisfies the engine contract.
	var ratingRepo recommend.RatingRepository
	if cfg.DatabaseEnabled() {
		db, err := database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		ratingRepo = psqlRepo.NewRatingRepository(db)
		logger.Info("Database connected successfully")
	} else {
		logger.Warn("No database configured, rating log is in-memory only")
	}

	// Session preferences: redis when configured, in-process otherwise
	var prefRepo preference.PreferenceRepository
	if cfg.RedisEnabled() {
		client, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer func() {
			_ = redisdb.CloseRedisClient(client)
		}()
		prefRepo = redisRepo.NewPreferenceRepository(client)
		logger.Info("Redis connected successfully")
	} else {
		logger.Warn("No redis configured, session preferences are in-memory only")
		prefRepo = memory.NewPreferenceRepository()
	}

	// Init services
	store := recommend.NewSimilarityStore()
	engineCfg := recommend.DefaultConfig()
	engineCfg.ContentWeight = cfg.Engine.ContentWeight
	engineCfg.CollaborativeWeight = cfg.Engine.CollaborativeWeight
	engineCfg.DefaultItemCount = cfg.Engine.DefaultItemCount

	recommendService := recommend.NewService(catalogRepo, ratingRepo, store, engineCfg)
	catalogService := catalog.NewCatalogService(catalogRepo)
	preferenceService := preference.NewPreferenceService(prefRepo)

	// Replay the durable rating log into the similarity store
	replayCtx, replayCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := recommendService.Restore(replayCtx); err != nil {
		replayCancel()
		logger.Fatal("Failed to restore rating log", "error", err)
	}
	replayCancel()

	// Init handlers
	recommendHandler := rest.NewRecommendHandler(recommendService, preferenceService)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	preferenceHandler := rest.NewPreferenceHandler(preferenceService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.SessionHeader},
	}))
	e.Use(middleware.SessionMiddleware())

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recommendHandler)
	router.SetupCatalogRoutes(api, catalogHandler)
	router.SetPreferenceRoutes(api, preferenceHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
