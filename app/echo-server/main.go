package main

import (
	"context"
	"fmt"
	"log"
	"myStyleShop/app/echo-server/router"
	"myStyleShop/business/category"
	"myStyleShop/business/collection"
	"myStyleShop/business/product"
	"myStyleShop/business/recommender"
	"myStyleShop/business/sharelink"
	"myStyleShop/business/wishlist"
	"myStyleShop/internal/middleware"
	psqlRepo "myStyleShop/internal/repository/postgres"
	redisRepo "myStyleShop/internal/repository/redis"
	"myStyleShop/internal/rest"
	"myStyleShop/pkg/config"
	"myStyleShop/pkg/database"
	redisdb "myStyleShop/pkg/database/redis"
	"myStyleShop/pkg/logger"
	"myStyleShop/pkg/memcache"
	"myStyleShop/pkg/metrics"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting myStyleShop", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Init repo
	productRepo := psqlRepo.NewProductRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)
	collectionRepo := psqlRepo.NewCollectionRepository(db)
	wishlistRepo := psqlRepo.NewWishlistRepository(db)

	// Init service
	productService := product.NewProductService(productRepo, categoryRepo)
	categoryService := category.NewCategoryService(categoryRepo)
	collectionService := collection.NewCollectionService(collectionRepo, productRepo)
	wishlistService := wishlist.NewService(wishlistRepo, productRepo)
	shareLinkService := sharelink.NewService(productRepo, cfg.ShareLink.Key, cfg.ShareLink.TTL, cfg.App.BaseURL)

	recommenderService := recommender.NewService(productRepo, recommender.Config{
		CollectionWeight: cfg.Recommender.CollectionWeight,
		AttributeWeight:  cfg.Recommender.AttributeWeight,
		PriceWeight:      cfg.Recommender.PriceWeight,
	})

	// The serving path optionally goes through a result cache; the
	// debug path always hits the recommender directly.
	var recommendService rest.RecommendationService = recommenderService
	switch cfg.Recommender.CacheDriver {
	case "redis":
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer func() {
			if err := redisdb.CloseRedisClient(redisClient); err != nil {
				logger.Error("Failed to close Redis client", err)
			}
		}()

		recommendService = recommender.NewCachedRecommender(
			recommenderService,
			redisRepo.NewRecommendationCache(redisClient),
			cfg.Recommender.CacheTTL,
		)
		logger.Info("Recommendation cache enabled", "driver", "redis")
	case "memory":
		recommendService = recommender.NewCachedRecommender(
			recommenderService,
			memcache.NewRecommendationCache(cfg.Recommender.CacheSize, cfg.Recommender.CacheTTL),
			cfg.Recommender.CacheTTL,
		)
		logger.Info("Recommendation cache enabled", "driver", "memory")
	default:
		logger.Info("Recommendation cache disabled")
	}

	// Init handler
	productHandler := rest.NewProductHandler(productService)
	categoryHandler := rest.NewCategoryHandler(categoryService)
	collectionHandler := rest.NewCollectionHandler(collectionService)
	recommendationHandler := rest.NewRecommendationHandler(recommendService)
	recommendationDebugHandler := rest.NewRecommendationDebugHandler(recommenderService)
	wishlistHandler := rest.NewWishlistHandler(wishlistService)
	shareLinkHandler := rest.NewShareLinkHandler(shareLinkService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, rest.HeaderWishlistToken},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware()
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupCategoryRoutes(api, categoryHandler, authRequired, adminOnly)
	router.SetupCollectionRoutes(api, collectionHandler, authRequired, adminOnly)
	router.SetRecommendationRoutes(api, recommendationHandler, recommendationDebugHandler, authRequired, adminOnly)
	router.SetWishlistRoutes(api, wishlistHandler)
	router.SetShareLinkRoutes(api, shareLinkHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
