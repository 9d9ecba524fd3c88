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

	"eventRadar/app/echo-server/router"
	eventService "eventRadar/business/event"
	interactionService "eventRadar/business/interaction"
	"eventRadar/business/recommend"
	userService "eventRadar/business/user"
	"eventRadar/internal/middleware"
	psqlRepo "eventRadar/internal/repository/postgres"
	redisRepo "eventRadar/internal/repository/redis"
	"eventRadar/internal/rest"
	"eventRadar/pkg/config"
	"eventRadar/pkg/database"
	redisDB "eventRadar/pkg/database/redis"
	"eventRadar/pkg/logger"
	"eventRadar/pkg/metrics"
	"eventRadar/pkg/utils"

	"github.com/go-playground/validator/v10"
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
	logger.Info("Starting EventRadar", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisDB.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer redisDB.CloseRedisClient(redisClient)

	logger.Info("Redis connected successfully")

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	eventRepo := psqlRepo.NewEventRepository(db)
	interactionRepo := psqlRepo.NewInteractionRepository(db)
	prefRepo := psqlRepo.NewPreferenceRepository(db)
	engineCfgRepo := psqlRepo.NewEngineConfigRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init service
	users := userService.NewUserService(userRepo, prefRepo, tokenRepo, validate)
	events := eventService.NewEventService(eventRepo)
	interactions := interactionService.NewInteractionService(interactionRepo, eventRepo)
	recommender := recommend.NewRecommendationService(
		interactionRepo,
		eventRepo,
		prefRepo,
		userRepo,
		engineCfgRepo,
		engineDefaults(cfg.Engine),
	)

	// Init handler
	userHandler := rest.NewUserHandler(users)
	eventHandler := rest.NewEventHandler(events)
	interactionHandler := rest.NewInteractionHandler(interactions)
	recommendationHandler := rest.NewRecommendationHandler(recommender)
	recommendAdminHandler := rest.NewRecommendAdminHandler(engineCfgRepo)
	healthHandler := rest.NewHealthHandler(interactions)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(tokenRepo)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupEventRoutes(api, eventHandler)
	router.SetupInteractionRoutes(api, interactionHandler, authRequired)
	router.SetupRecommendationRoutes(api, recommendationHandler, authRequired)
	router.SetupRecommendAdminRoutes(api, recommendAdminHandler, authRequired, adminOnly)

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

func engineDefaults(env config.EngineConfig) recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.WCollaborative = env.WCollaborative
	cfg.WContent = env.WContent
	cfg.WPopularity = env.WPopularity
	cfg.DistanceWeight = env.DistanceWeight
	cfg.DistanceCap = env.DistanceCap
	cfg.RecencyWindow = time.Duration(env.RecencyWindowSeconds) * time.Second
	cfg.ExcludeSeen = env.ExcludeSeen
	cfg.DefaultTopN = env.DefaultTopN
	return cfg
}
