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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/yourusername/bhp-api/internal/config"
	"github.com/yourusername/bhp-api/internal/domain/repository"
	"github.com/yourusername/bhp-api/internal/handler"
	"github.com/yourusername/bhp-api/internal/middleware"
	"github.com/yourusername/bhp-api/internal/pkg/logger"
	pgRepo "github.com/yourusername/bhp-api/internal/repository/postgres"
	"github.com/yourusername/bhp-api/pkg/auth"
	"github.com/yourusername/bhp-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.Server.Mode)

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), database.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if cfg.Database.AutoMigrate {
		if err := database.MigrateDB(db, cfg.Database.MigrationsDir); err != nil {
			log.Printf("Failed to migrate database: %v", err)
			os.Exit(1)
		}
	}

	// Redis нужен только для rate limiting
	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled {
		redisClient, err = database.NewUniversalRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Репозитории создаются на каждый запрос: свой unit of work, контекст запроса
	questionRepos := func(ctx context.Context) repository.QuestionRepository {
		return pgRepo.NewQuestionRepo(db.WithContext(ctx))
	}
	answerRepos := func(ctx context.Context) repository.AnswerRepository {
		return pgRepo.NewAnswerRepo(db.WithContext(ctx))
	}

	appLog := logger.New("API")
	router := &handler.Router{
		Questions: handler.NewQuestionHandler(questionRepos, answerRepos, appLog.With("QuestionHandler")),
		Answers:   handler.NewAnswerHandler(answerRepos, questionRepos, appLog.With("AnswerHandler")),
		Health:    handler.NewHealthHandler(func(ctx context.Context) error { return database.Ping(ctx, db) }, appLog.With("Health")),
		Auth:      middleware.NewAuthMiddleware(jwtService, appLog.With("Auth")),
	}
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := middleware.NewRateLimiter(redisClient, appLog.With("RateLimiter"))
		limitCfg := middleware.DefaultWriteRateLimitConfig()
		limitCfg.MaxRequests = cfg.RateLimit.MaxRequests
		limitCfg.Window = cfg.RateLimit.Window()
		router.WriteLimit = limiter.Limit(limitCfg)
	}

	engine := gin.New()
	engine.Use(middleware.RequestLogger(appLog.With("HTTP")), middleware.Recovery(appLog.With("Recovery")))

	// В release не доверяем прокси-заголовкам (защита от IP spoofing)
	trusted := []string{"127.0.0.1", "::1"}
	if gin.Mode() == gin.ReleaseMode {
		trusted = nil
	}
	if err := engine.SetTrustedProxies(trusted); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Location", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Register(engine)

	// HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	closeResources(db, redisClient)
	log.Println("Server exited properly")
}

func closeResources(db *gorm.DB, redisClient redis.UniversalClient) {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if sqlDB, err := database.GetSQLDB(db); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
}
