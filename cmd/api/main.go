// @title MindSpark API
// @version 1.0
// @description Backend API for MindSpark, a micro-activity platform for students.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mindspark/internal/adapter"
	"mindspark/internal/cache"
	"mindspark/internal/config"
	"mindspark/internal/database"
	"mindspark/internal/handler"
	"mindspark/internal/logger"
	"mindspark/internal/middleware"
	"mindspark/internal/repository"
	"mindspark/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Repositories
	activityRepository := repository.NewSQLXActivityRepository(db)
	profileRepository := repository.NewSQLXProfileRepository(db)
	interestRepository := repository.NewSQLXInterestRepository(db)
	scheduleRepository := repository.NewSQLXScheduleRepository(db)
	badgeRepository := repository.NewSQLXBadgeRepository(db)
	userRepository := repository.NewSQLXUserRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Redis-backed catalog cache. The API still serves without Redis;
	// lookups just skip the cache.
	var activityCache service.ActivityCacheService
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, running without activity cache", zap.Error(err))
		activityCache = service.NewActivityCacheService(nil, activityRepository, cfg.Cache.ActivityTTL)
	} else {
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
		activityCache = service.NewActivityCacheService(cacheAdapter, activityRepository, cfg.Cache.ActivityTTL)
	}

	// Services
	profileService := service.NewProfileService(profileRepository)
	activityService := service.NewActivityService(activityRepository, interestRepository, badgeRepository, profileService, activityCache, txManager)
	interestService := service.NewInterestService(interestRepository, txManager)
	scheduleService := service.NewScheduleService(scheduleRepository)

	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	// Handlers
	activityHandler := handler.NewActivityHandler(activityService)
	profileHandler := handler.NewProfileHandler(profileService)
	interestHandler := handler.NewInterestHandler(interestService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// Activity routes
	activityGroup := apiGroup.Group("/activities", middleware.Protected(authService))
	activityGroup.Get("/random", activityHandler.GetRandomActivity)
	activityGroup.Post("/:id/submit", activityHandler.SubmitAnswer)
	activityGroup.Post("/:id/complete", activityHandler.CompleteActivity)

	apiGroup.Get("/stats", middleware.Protected(authService), activityHandler.GetStats)

	// Profile routes
	profileGroup := apiGroup.Group("/profile", middleware.Protected(authService))
	profileGroup.Get("/", profileHandler.GetProfile)
	profileGroup.Put("/", profileHandler.UpdateProfile)

	// Interest routes
	interestGroup := apiGroup.Group("/interests", middleware.Protected(authService))
	interestGroup.Get("/", interestHandler.GetInterests)
	interestGroup.Post("/", interestHandler.SetInterests)

	// Schedule routes
	scheduleGroup := apiGroup.Group("/schedules", middleware.Protected(authService))
	scheduleGroup.Get("/", scheduleHandler.GetSchedules)
	scheduleGroup.Post("/", scheduleHandler.CreateSchedule)
	scheduleGroup.Delete("/:id", scheduleHandler.DeleteSchedule)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
