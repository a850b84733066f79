package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iby-sports/gridiron-analytics/internal/api"
	"github.com/iby-sports/gridiron-analytics/internal/api/handlers"
	"github.com/iby-sports/gridiron-analytics/internal/api/middleware"
	"github.com/iby-sports/gridiron-analytics/internal/generator"
	"github.com/iby-sports/gridiron-analytics/internal/models"
	"github.com/iby-sports/gridiron-analytics/internal/providers"
	"github.com/iby-sports/gridiron-analytics/internal/services"
	"github.com/iby-sports/gridiron-analytics/pkg/config"
	"github.com/iby-sports/gridiron-analytics/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	log := logger.InitLogger("", cfg.IsDevelopment())
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Cache backend: Redis when configured, otherwise in-process memory
	var cache services.CacheStore
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		cache = services.NewRedisCache(redisClient, log)
		log.Info("Using Redis cache")
	} else {
		cache = services.NewMemoryCache(log)
		log.Info("Using in-memory cache")
	}

	// Data sources in priority order
	espn := providers.NewESPNSource()
	ncaa := providers.NewNCAASource()
	odds := providers.NewOddsAPISource(cfg.OddsAPIKey)
	news := providers.NewNewsAPISource(cfg.NewsAPIKey)

	sourceNames := []string{espn.Name(), ncaa.Name(), odds.Name(), news.Name()}

	limiter := services.NewSourceRateLimiter(cfg.SourceRateLimit, cfg.SourceRateWindow)
	breakers := services.NewBreakerSet(sourceNames, cfg.CircuitBreakerThreshold, 60*time.Second, log)
	gen := generator.New(cfg.GeneratorSeed)

	provider := services.NewDataProvider(cache, limiter, breakers, gen, log, services.ProviderOptions{
		Timeout:       cfg.ExternalAPITimeout,
		RetryAttempts: cfg.RetryAttempts,
		RetryBackoff:  cfg.RetryBackoff,
		TTLs: map[models.DataKind]time.Duration{
			models.KindGames:    cfg.GamesTTL,
			models.KindRankings: cfg.RankingsTTL,
			models.KindInjuries: cfg.InjuriesTTL,
			models.KindOdds:     cfg.OddsTTL,
			models.KindNews:     cfg.NewsTTL,
		},
	})

	provider.Register(models.KindGames, espn, ncaa)
	provider.Register(models.KindRankings, espn, ncaa)
	provider.Register(models.KindInjuries, espn)
	provider.Register(models.KindOdds, odds)
	provider.Register(models.KindNews, espn, news)

	if cfg.DisableExternalOdds {
		provider.DisableSource(odds.Name(), "disabled by configuration")
	}

	// WebSocket hub and background refresher
	hub := services.NewHub(log)
	if cfg.EnableRefresher {
		refresher := services.NewRefresher(provider, hub, log, cfg.RefreshInterval)
		if err := refresher.Start(); err != nil {
			log.Errorf("Failed to start refresher: %v", err)
		}
		defer refresher.Stop()
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CorsOrigins))

	healthHandler := handlers.NewHealthHandler(hub)
	router.GET("/health", healthHandler.GetHealth)
	router.GET("/ready", healthHandler.GetReady)

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, provider, gen, cfg, log)

	// CORS proxy for browser clients that talk to upstream APIs directly
	proxyHandler := handlers.NewProxyHandler(cfg.ProxyAllowedHosts, cfg.APISportsKey, cfg.ProxyRateLimit, cfg.ProxyBurst, log)
	router.GET("/api/proxy", proxyHandler.Handle)

	// WebSocket endpoint at root level (not under /api/v1)
	streamHandler := handlers.NewStreamHandler(hub, log)
	router.GET("/ws", streamHandler.Handle)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
