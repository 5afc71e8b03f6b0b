package main

import (
	"log" // log package is needed for logging

	"ledger_system/internal/api"    // Custom package for API handlers
	"ledger_system/internal/config" // Custom package for configuration
	"ledger_system/internal/store"  // Custom package for data access

	// For loading .env files
	"github.com/gin-gonic/gin"    // Gin web framework
	"github.com/sirupsen/logrus"  // Logrus for structured logging
	"gorm.io/driver/postgres"     // Postgres driver for GORM
	"gorm.io/gorm"                // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database; TranslateError lets constraint violations
	// surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	r.LoadHTMLGlob(cfg.TemplatesGlob)   // Admin HTML templates
	r.Static("/static", cfg.StaticDir)  // Static assets

	st := store.New(db) // Data-access handle injected into every route

	// User routes
	r.POST("/users/", api.CreateUserHandler(st))   // Create user endpoint
	r.GET("/users/", api.ListUsersHandler(st))     // List users endpoint
	r.GET("/users/:id", api.GetUserHandler(st))    // Get user endpoint

	// Transaction routes
	r.POST("/transactions/", api.AddTransactionHandler(st)) // Add transaction endpoint

	// Admin routes
	adminGroup := r.Group("/admin")
	adminGroup.GET("/", api.AdminDashboardHandler(st))           // Dashboard endpoint
	adminGroup.GET("/users/:id", api.EditUserFormHandler(st))    // Edit form endpoint
	adminGroup.POST("/users/:id", api.UpdateUserHandler(st))     // Update username endpoint
	adminGroup.POST("/users/:id/delete", api.DeleteUserHandler(st)) // Delete user endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
