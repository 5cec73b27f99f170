// ABOUTME: Main entry point for the Inkwell API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inkwell-api/api"
	"inkwell-api/api/handlers"
	"inkwell-api/core/articles"
	"inkwell-api/core/auth"
	"inkwell-api/core/comments"
	"inkwell-api/core/interfaces"
	"inkwell-api/core/profiles"
	"inkwell-api/core/reactions"
	"inkwell-api/core/tags"
	"inkwell-api/core/users"
	"inkwell-api/core/workers"
	"inkwell-api/infrastructure/cache/memory"
	"inkwell-api/infrastructure/cache/redis"
	"inkwell-api/infrastructure/email/logmail"
	"inkwell-api/infrastructure/email/smtp"
	logruslogger "inkwell-api/infrastructure/logger/logrus"
	"inkwell-api/infrastructure/storage/sqlite"
	"inkwell-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting Inkwell API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Open durable storage
	store, err := sqlite.NewClient(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:  cache,
		Logger: logger,
	}

	// Create mailer and background email worker
	var mailer interfaces.Mailer
	if cfg.Email.Mode == "smtp" {
		mailer, err = smtp.NewSMTPMailer(cfg.Email)
		if err != nil {
			log.Fatalf("Failed to create SMTP mailer: %v", err)
		}
	} else {
		mailer = logmail.NewLogMailer(logger)
	}

	emailWorker := workers.NewEmailWorker(mailer, logger, workers.WorkerConfig{
		MaxWorkers: cfg.Email.Workers,
		QueueSize:  cfg.Email.QueueSize,
	})
	if err := emailWorker.Start(); err != nil {
		log.Fatalf("Failed to start email worker: %v", err)
	}

	// Create services
	userService := users.NewService(store.Users(), store.Profiles(), deps)
	authService := auth.NewService(store.Users(), userService, store.ResetTokens(), emailWorker, auth.Config{
		JWTSecret: cfg.Auth.JWTSecret,
		TokenTTL:  time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
		ResetURL:  cfg.Auth.ResetURL,
	}, deps)
	profileService := profiles.NewService(userService, store.Profiles(), store.Follows(), deps)
	articleService := articles.NewService(store.Articles(), store.Tags(), deps)
	commentService := comments.NewService(store.Comments(), deps)
	reactionService := reactions.NewService(store.Likes(), deps)
	tagService := tags.NewService(store.Tags(), deps)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		Verifier:   authService,
		RateLimit:  100, // requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewAuthHandler(authService).RegisterRoutes(humaAPI)
	handlers.NewUserHandler(userService).RegisterRoutes(humaAPI)
	handlers.NewProfileHandler(profileService).RegisterRoutes(humaAPI)
	handlers.NewArticleHandler(articleService).RegisterRoutes(humaAPI)
	handlers.NewCommentHandler(commentService).RegisterRoutes(humaAPI)
	handlers.NewReactionHandler(reactionService).RegisterRoutes(humaAPI)
	handlers.NewTagHandler(tagService).RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := emailWorker.Stop(); err != nil {
		logger.Error("Email worker failed to stop cleanly", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}
