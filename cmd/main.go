package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/wellforge/masterclass-backend/internal/db"
	"github.com/wellforge/masterclass-backend/internal/handlers"
	"github.com/wellforge/masterclass-backend/internal/logger"
	"github.com/wellforge/masterclass-backend/internal/middleware"
	"github.com/wellforge/masterclass-backend/internal/repos"
	"github.com/wellforge/masterclass-backend/internal/server"
	"github.com/wellforge/masterclass-backend/internal/services"
	"github.com/wellforge/masterclass-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	messageRateLimit := utils.GetEnvAsInt("POD_MESSAGE_RATE_LIMIT", 20, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.SeedDayTemplates(context.Background()); err != nil {
		log.Warn("Day template seeding failed", "error", err)
	}
	thePG := postgresService.DB()

	// Redis
	redisAddr := utils.GetEnv("REDIS_ADDR", "localhost:6379", log)
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	// Repos
	log.Info("Setting up repos...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	userTagRepo := repos.NewUserTagRepo(thePG, log)
	podRepo := repos.NewPodRepo(thePG, log)
	podMessageRepo := repos.NewPodMessageRepo(thePG, log)
	dayProgressRepo := repos.NewDayProgressRepo(thePG, log)
	dayTemplateRepo := repos.NewDayTemplateRepo(thePG, log)
	userMessageLogRepo := repos.NewUserMessageLogRepo(thePG, log)
	aiCallLogRepo := repos.NewAICallLogRepo(thePG, log)

	// Services
	log.Info("Setting up services...")
	aiClient, err := services.NewAnthropicClient(log)
	if err != nil {
		log.Error("Could not init AnthropicClient", "error", err)
		os.Exit(1)
	}
	authService := services.NewAuthService(
		thePG,
		log,
		userRepo,
		userTokenRepo,
		jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second,
		time.Duration(refreshTokenTTL)*time.Second,
	)
	messageService := services.NewMessageService(thePG, log, podMessageRepo)
	podService := services.NewPodService(
		thePG,
		log,
		podRepo,
		podMessageRepo,
		dayProgressRepo,
		dayTemplateRepo,
		userTagRepo,
		userRepo,
		userMessageLogRepo,
		aiCallLogRepo,
		messageService,
		aiClient,
		services.NewDelayCalculator(),
	)
	rateLimiter := services.NewRedisRateLimiter(log, rdb, messageRateLimit, time.Minute)

	// Handlers
	log.Info("Setting up handlers...")
	authHandler := handlers.NewAuthHandler(authService)
	podHandler := handlers.NewPodHandler(log, podService, rateLimiter)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	var allowOrigins []string
	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		allowOrigins = strings.Split(raw, ",")
	}
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		PodHandler:     podHandler,
		AllowOrigins:   allowOrigins,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
