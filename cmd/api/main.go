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

	"github.com/sandipmavi/Backend-yt/internal/auth"
	"github.com/sandipmavi/Backend-yt/internal/config"
	"github.com/sandipmavi/Backend-yt/internal/database"
	"github.com/sandipmavi/Backend-yt/internal/logging"
	"github.com/sandipmavi/Backend-yt/internal/metrics"
	"github.com/sandipmavi/Backend-yt/internal/middleware"
	"github.com/sandipmavi/Backend-yt/internal/storage"
	"github.com/sandipmavi/Backend-yt/internal/tracing"
)

// API holds the handler dependencies
type API struct {
	repo    repository
	storage *storage.Storage
	tokens  *auth.TokenManager
	log     *logging.Logger
}

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is not configured")
	}

	// Initialize tracing
	if cfg.Tracing.Enabled {
		_, closer, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.JaegerEndpoint)
		if err != nil {
			logger.Fatalf("Failed to initialize tracing: %v", err)
		}
		defer closer.Close()
	}

	// Initialize database
	db, err := database.New(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			logger.ErrorWithErr("Failed to close database", err)
		}
	}()

	repo := database.NewRepository(db)

	// Initialize media storage
	stor, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Fatalf("Failed to initialize storage: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	api := &API{
		repo:    repo,
		storage: stor,
		tokens:  tokens,
		log:     logger,
	}

	// Setup router
	router := setupRouter(api, cfg)

	// Start metrics server
	var metricsSrv *metrics.Server
	if cfg.Metrics.Enabled {
		metricsSrv = metrics.NewServer(cfg.Metrics.Port)
		go func() {
			logger.Infof("Starting metrics server on port %d", cfg.Metrics.Port)
			if err := metricsSrv.Start(); err != nil {
				logger.ErrorWithErr("Metrics server failed", err)
			}
		}()
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Infof("Starting API server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logger.ErrorWithErr("Metrics server forced to shutdown", err)
		}
	}

	logger.Info("Server stopped")
}

func setupRouter(api *API, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(api.log))
	router.Use(middleware.Metrics())

	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		router.Use(middleware.RateLimit(rl, api.tokens))
	}

	// Health check
	router.GET("/health", api.healthCheck)

	authRequired := middleware.Auth(api.tokens)

	v1 := router.Group("/api/v1")

	user := v1.Group("/user")
	{
		user.POST("/signup", api.signup)
		user.POST("/login", api.login)
	}

	video := v1.Group("/video")
	{
		video.GET("/", authRequired, api.whoami)
		video.POST("/upload", authRequired, api.uploadVideo)
		video.PUT("/update/:id", authRequired, api.updateVideo)
		video.DELETE("/delete/:id", authRequired, api.deleteVideo)
		video.GET("/all", api.listVideos)
		video.GET("/myvideos", authRequired, api.listMyVideos)
		video.GET("/category/:category", api.listVideosByCategory)
		video.GET("/tags/:tag", api.listVideosByTag)
		video.GET("/:id", authRequired, api.getVideo)
		video.POST("/like", authRequired, api.likeVideo)
		video.POST("/dislike", authRequired, api.dislikeVideo)
	}

	comment := v1.Group("/comment")
	{
		comment.POST("/", authRequired, api.createComment)
		comment.DELETE("/:commentId", authRequired, api.deleteComment)
		comment.PUT("/update/:commentId", authRequired, api.updateComment)
		comment.GET("/all", api.listComments)
		comment.GET("/:videoId", api.listCommentsByVideo)
	}

	return router
}

// Health check endpoint
func (api *API) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := api.repo.Health(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
