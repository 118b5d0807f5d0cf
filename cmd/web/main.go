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
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/orchids/cinesearch/internal/backend"
	"github.com/orchids/cinesearch/internal/cache"
	"github.com/orchids/cinesearch/internal/config"
	"github.com/orchids/cinesearch/internal/enrich"
	"github.com/orchids/cinesearch/internal/handler"
	"github.com/orchids/cinesearch/pkg/logger"
	"github.com/orchids/cinesearch/web/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Server.Environment, cfg.LogLevel)
	log.Info(context.Background(), "Starting cinesearch web frontend", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"backend":     cfg.Backend.BaseURL,
	})

	store, cacheBackend := initCache(cfg, log)

	backendClient := backend.NewClient(&cfg.Backend, log)
	enricher := enrich.New(backendClient, store, cfg.Enrichment, log)

	authMiddleware := handler.NewAuthMiddleware(backendClient, log)
	pageHandler := handler.NewPageHandler(backendClient, enricher, cfg, log)
	authHandler := handler.NewAuthHandler(backendClient, log)
	adminHandler := handler.NewAdminHandler(backendClient, log)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.Parse()
	if err != nil {
		log.Fatal(context.Background(), "Failed to parse templates", err, nil)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(log))
	router.SetHTMLTemplate(tmpl)

	router.Static("/static", "./web/static")

	router.GET("/healthz", func(c *gin.Context) {
		ctx := c.Request.Context()

		backendHealthy := true
		if err := backendClient.Ping(ctx); err != nil {
			backendHealthy = false
		}

		status := "healthy"
		httpStatus := http.StatusOK
		if !backendHealthy {
			status = "unhealthy"
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status": status,
			"checks": gin.H{
				"backend": backendHealthy,
				"cache":   cacheBackend,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	router.GET("/login", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.POST("/register", authHandler.Register)
	router.POST("/logout", authHandler.Logout)

	router.GET("/posters/:id", pageHandler.Poster)
	router.GET("/api/posters/:id", pageHandler.PosterAPI)

	pages := router.Group("/")
	pages.Use(authMiddleware.RequireUser())
	{
		pages.GET("/", pageHandler.SearchPage)
		pages.GET("/search", pageHandler.SearchResults)
		pages.GET("/films/:id", pageHandler.FilmDetails)
		pages.GET("/history", pageHandler.History)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.GET("", adminHandler.Dashboard)
		admin.POST("/users/:id/block", adminHandler.BlockUser)
		admin.POST("/users/:id/unblock", adminHandler.UnblockUser)
		admin.POST("/users/:id/delete", adminHandler.DeleteUser)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info(context.Background(), "HTTP server starting", map[string]interface{}{
			"address": cfg.Server.Address(),
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(context.Background(), "Failed to start server", err, nil)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(context.Background(), "Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(context.Background(), "Server forced to shutdown", err, nil)
	}

	log.Info(context.Background(), "Server exited gracefully", nil)
}

// initCache connects the poster cache. The cache is a best-effort concern:
// an unreachable Redis degrades to the in-process store instead of failing
// startup.
func initCache(cfg *config.Config, log *logger.Logger) (cache.Store, string) {
	if !cfg.Redis.Enabled {
		return cache.NewMemory(), "memory"
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Address(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn(ctx, "Redis unavailable, using in-process poster cache", map[string]interface{}{
			"address": cfg.Redis.Address(),
			"error":   err.Error(),
		})
		client.Close()
		return cache.NewMemory(), "memory"
	}

	log.Info(ctx, "Redis connection established", nil)
	return cache.NewRedis(client, log), "redis"
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		ctx := context.WithValue(c.Request.Context(), "request_id", requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info(c.Request.Context(), "HTTP request", map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": latency.Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
	}
}
