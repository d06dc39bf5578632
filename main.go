package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weddingplanner/config"
	"weddingplanner/database"
	bookingRepoPkg "weddingplanner/database/repository/bookings"
	cartRepoPkg "weddingplanner/database/repository/carts"
	catalogRepoPkg "weddingplanner/database/repository/catalog"
	premiumRepoPkg "weddingplanner/database/repository/premium"
	reviewRepoPkg "weddingplanner/database/repository/reviews"
	userRepoPkg "weddingplanner/database/repository/users"
	"weddingplanner/handlers"
	"weddingplanner/middleware"
	"weddingplanner/routes"
	"weddingplanner/services/bookings"
	"weddingplanner/services/carts"
	"weddingplanner/services/catalog"
	"weddingplanner/services/premium"
	"weddingplanner/services/reviews"
	"weddingplanner/services/stats"
	"weddingplanner/services/users"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect()
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	logger.Sugar().Info("Connected to MongoDB successfully!")
	db := client.Database(config.AppConfig.DatabaseName)

	utils.InitCache()
	cacheClient := utils.GetCacheClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())

	// repositories.
	packageRepo := catalogRepoPkg.NewMongoPackageRepo(db)
	shopRepo := catalogRepoPkg.NewMongoShopRepo(db)
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo(db)
	cartRepo := cartRepoPkg.NewMongoCartRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	biodataRepo := premiumRepoPkg.NewMongoBiodataRepo(db)
	unlockRepo := premiumRepoPkg.NewMongoUnlockRepo(db)

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Packages: packageRepo,
		Shop:     shopRepo,
	}
	reviewService := &reviews.DefaultReviewService{Repo: reviewRepo}
	cartService := &carts.DefaultCartService{Repo: cartRepo, Validate: validator.New()}
	userService := &users.DefaultUserService{Repo: userRepo}
	bookingService := &bookings.DefaultBookingService{Repo: bookingRepo}
	premiumService := &premium.DefaultPremiumService{
		Biodata:  biodataRepo,
		Unlocks:  unlockRepo,
		Validate: validator.New(),
	}
	statsService := &stats.DefaultStatsService{
		Users:    userRepo,
		Bookings: bookingRepo,
		Reviews:  reviewRepo,
		Carts:    cartRepo,
		Cache:    &stats.RedisCache{Client: cacheClient},
		CacheTTL: time.Duration(config.AppConfig.StatsCacheTTLSeconds) * time.Second,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog:  handlers.NewCatalogHandler(catalogService),
		Reviews:  handlers.NewReviewHandler(reviewService),
		Carts:    handlers.NewCartHandler(cartService),
		Users:    handlers.NewUserHandler(userService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Premium:  handlers.NewPremiumHandler(premiumService),
		Stats:    handlers.NewStatsHandler(statsService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(cacheClient, client)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect from MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
