package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/learn-track/server/internal/cache"
	"github.com/learn-track/server/internal/handler"
	"github.com/learn-track/server/internal/middleware"
	"github.com/learn-track/server/internal/repository"
	"github.com/learn-track/server/internal/service"
	"github.com/learn-track/server/migrations"
	"github.com/learn-track/server/pkg/config"
	"github.com/learn-track/server/pkg/crypto"
	"github.com/learn-track/server/pkg/db"
	"github.com/learn-track/server/pkg/jwt"
	"github.com/learn-track/server/pkg/logger"
	"github.com/learn-track/server/pkg/redis"
	"github.com/learn-track/server/pkg/telemetry"
)

const (
	serviceName    = "learn-track"
	serviceVersion = "1.0.0"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.NewFileLoader(*configPath).Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg := logger.New(&logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Caller: cfg.Log.Caller,
	})
	logg.Info("Starting learn-track server")

	ctx := context.Background()

	// 链路追踪和指标
	_, shutdownTelemetry, err := telemetry.Init(ctx, &telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		Environment:    cfg.Telemetry.Environment,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.Enabled,
	})
	if err != nil {
		logg.Fatal("Failed to init telemetry", logger.Error(err))
	}
	defer shutdownTelemetry(context.Background())

	// 启动时应用数据库迁移
	migrator, err := db.NewMigrator(&cfg.Postgres, migrations.FS, ".")
	if err != nil {
		logg.Fatal("Failed to create migrator", logger.Error(err))
	}
	if err := migrator.EnsureSchema(); err != nil {
		logg.Fatal("Failed to apply migrations", logger.Error(err))
	}
	migrator.Close()

	pool, err := db.NewPool(ctx, &cfg.Postgres)
	if err != nil {
		logg.Fatal("Failed to connect to postgres", logger.Error(err))
	}
	defer pool.Close()

	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logg.Fatal("Failed to connect to redis", logger.Error(err))
	}
	defer redisClient.Close()

	// 仓储层
	videoRepo := repository.NewVideoRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	// 服务层
	statsCache := cache.NewRedisStatsCache(redisClient, cfg.Redis.StatsCacheTTL)
	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:        cfg.Auth.JWTSecret,
		Issuer:        cfg.Auth.Issuer,
		TokenExpiry:   cfg.Auth.TokenExpiry,
		RefreshExpiry: cfg.Auth.RefreshExpiry,
	})

	var googleVerifier service.GoogleVerifier = service.DisabledGoogleVerifier{}
	if cfg.Auth.GoogleClientID != "" {
		verifier, err := service.NewGoogleVerifier(ctx, cfg.Auth.GoogleClientID)
		if err != nil {
			logg.Fatal("Failed to init google verifier", logger.Error(err))
		}
		googleVerifier = verifier
	}

	videoService := service.NewVideoService(videoRepo, statsCache)
	statsService := service.NewStatsService(statsRepo, statsCache)
	authService := service.NewAuthService(userRepo, crypto.NewPasswordHasher(), jwtManager, googleVerifier)

	router := newRouter(cfg, logg, jwtManager,
		handler.NewAuthHandler(authService),
		handler.NewVideoHandler(videoService),
		handler.NewStatsHandler(statsService),
		handler.NewHealthHandler(pool, redisClient),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logg.Info("HTTP server listening", logger.Int("port", cfg.Server.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("Failed to start HTTP server", logger.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down learn-track server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error("HTTP server forced to shutdown", logger.Error(err))
	}

	logg.Info("learn-track server stopped")
}

func newRouter(
	cfg *config.Config,
	logg logger.Logger,
	jwtManager *jwt.Manager,
	authHandler *handler.AuthHandler,
	videoHandler *handler.VideoHandler,
	statsHandler *handler.StatsHandler,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.Recovery(logg))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.Server.CORSOrigin))
	router.Use(middleware.Logging(logg))
	router.Use(middleware.Tracing(serviceName))

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.IPPerSecond,
			cfg.RateLimit.IPBurst,
			cfg.RateLimit.UserPerSecond,
			cfg.RateLimit.UserBurst,
		)
		router.Use(limiter.Limit())
	}

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/google", authHandler.Google)
		auth.POST("/refresh", authHandler.Refresh)
	}

	api := router.Group("/api/v1")
	api.Use(middleware.Auth(jwtManager, logg))
	{
		api.POST("/videos", videoHandler.RecordWatch)
		api.GET("/videos", videoHandler.ListVideos)
		api.GET("/videos/:id", videoHandler.GetVideo)
		api.PATCH("/videos/:id", videoHandler.UpdateVideo)
		api.DELETE("/videos/:id", videoHandler.DeleteVideo)

		api.GET("/stats", statsHandler.GetStats)
	}

	return router
}
