package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"gourmet/articles"
	"gourmet/auth"
	"gourmet/config"
	"gourmet/db"
	"gourmet/favorites"
	"gourmet/ingredients"
	"gourmet/logging"
	"gourmet/middleware"
	"gourmet/ratelim"
	"gourmet/rdx"
	"gourmet/recipes"
	"gourmet/routes"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, dotenv := config.Load()

	logger, err := logging.New(cfg.Development())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	if !dotenv {
		logger.Info("no .env file found; using system environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("mongo disconnect", zap.Error(err))
		}
	}()
	if err := db.EnsureIndexes(ctx, database); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	cache, err := rdx.Connect(ctx, cfg.RedisURL, cfg.RedisPassword, logger)
	if err != nil {
		// Redis only accelerates reads; run without it.
		logger.Warn("redis unavailable, caching disabled", zap.Error(err))
		cache = nil
	}
	defer func() { _ = cache.Close() }()

	recipeStore := db.NewRecipeStore(database)
	userStore := db.NewUserStore(database)

	handlers := routes.Handlers{
		Recipes:     recipes.NewHandler(recipes.NewService(recipeStore, cache, logger), logger),
		Favorites:   favorites.NewHandler(userStore, recipeStore, logger),
		Auth:        auth.NewHandler(auth.NewService(userStore, logger), logger),
		Ingredients: ingredients.NewHandler(ingredients.NewService(db.NewIngredientStore(database), cache), logger),
		Articles: articles.NewHandler(articles.NewClient(articles.Config{
			APIKey: cfg.NewsAPIKey,
			URL:    cfg.NewsAPIURL,
		}, cache, logger)),
	}

	router := httprouter.New()
	routes.RoutesWrapper(router, handlers, ratelim.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// CORS → security headers → logging → recover → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(middleware.SecurityHeaders(middleware.Logging(logger)(middleware.Recover(logger)(router))))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           corsHandler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Port), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received; shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped cleanly")
	return nil
}
