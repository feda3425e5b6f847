package router

import (
	"github.com/IbrahimAlakbarov06/social-media-task/internal/handlers"
	"github.com/IbrahimAlakbarov06/social-media-task/internal/middleware"
	"github.com/IbrahimAlakbarov06/social-media-task/internal/models"
	"github.com/IbrahimAlakbarov06/social-media-task/internal/monitoring"
	"github.com/IbrahimAlakbarov06/social-media-task/internal/repositories"
	"github.com/IbrahimAlakbarov06/social-media-task/internal/services"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(monitoring.InstrumentHandler())
	logrus.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Reaction{},
		&models.Follow{},
	)
	if err != nil {
		logrus.Fatalf("Failed to auto migrate models: %v", err)
	}
	logrus.Info("PostgreSQL auto-migrations completed for all models.")

	// Health check and metrics - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	reactionRepo := repositories.NewPostgresReactionRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	// --- Initialize Services ---
	userService := services.NewUserService(userRepo, followRepo)
	postService := services.NewPostService(postRepo, reactionRepo, userRepo, followRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	logrus.Info("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())

	userHandler := handlers.NewUserHandler(userService)
	userHandler.RegisterUserRoutes(api)

	followHandler := handlers.NewFollowHandler(userService)
	followHandler.RegisterFollowRoutes(api)

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)

	feedHandler := handlers.NewFeedHandler(postService)
	feedHandler.RegisterFeedRoutes(api)

	logrus.Info("All routes configured.")
}
