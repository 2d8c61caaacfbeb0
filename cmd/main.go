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

	"octofit/database"
	"octofit/docs"
	"octofit/internal/cache"
	"octofit/internal/config"
	"octofit/internal/controllers"
	"octofit/internal/middleware"
	"octofit/internal/services"
	"octofit/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "OctoFit Tracker API"
	docs.SwaggerInfo.Description = "Fitness tracking API: teams, users, activities, leaderboard and workout suggestions."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	conn, err := database.Open(connectCtx, cfg)
	if err != nil {
		cancel()
		log.Fatalf("Failed to connect to %s store: %v", cfg.Store.Driver, err)
	}
	if err := conn.Migrate(connectCtx); err != nil {
		cancel()
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	cancel()
	if conn.DB != nil {
		database.MonitorDBConnections(ctx, conn.DB, 40)
	}
	log.Printf("Store driver: %s, denormalization mode: %s", conn.Driver, cfg.Store.DenormalizationMode)

	repos := conn.Repositories()

	var (
		nameCache   services.NameCache
		cacheHealth controllers.Pinger
	)
	if cfg.Redis.URL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL, cfg.Redis.NameCacheTTL)
		if err != nil {
			log.Printf("Warning: user name cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			nameCache = redisClient
			cacheHealth = redisClient
			log.Println("User name cache connected to Redis")
		}
	}

	names := services.NewUserNameResolver(repos.Users, nameCache)
	maintenance := services.NewMaintenanceService(repos, cfg.Store.DenormalizationMode)
	handlers := controllers.NewHandlers(repos, conn, names, maintenance)
	if cacheHealth != nil {
		handlers.Root.WatchCache(cacheHealth)
	}

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.Metrics(), middleware.RequestTimeout(cfg.Server.RequestTimeout))

	routes.RegisterAPIRoutes(router, handlers, cfg.Auth.JWTSecret)
	routes.RegisterSwaggerRoutes(router)
	if cfg.Auth.JWTSecret != "" {
		log.Println("Bearer token required on mutating routes")
	}

	server := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Server.Port)
		log.Printf("Health Check: http://localhost:%s/healthz", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if err := conn.Close(shutdownCtx); err != nil {
		log.Printf("Failed to close store connection: %v", err)
	}
	log.Println("Server exited")
}
