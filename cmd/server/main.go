package main

import (
	"github.com/IbrahimAlakbarov06/social-media-task/internal/router"
	"github.com/IbrahimAlakbarov06/social-media-task/pkg/config"
	"github.com/IbrahimAlakbarov06/social-media-task/pkg/logger"
	"github.com/IbrahimAlakbarov06/social-media-task/validators"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func main() {
	logger.InitLogger()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
