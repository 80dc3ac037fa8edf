package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yash932/Backend-Node/config"
	"github.com/yash932/Backend-Node/controllers"
	"github.com/yash932/Backend-Node/migrations"
	"github.com/yash932/Backend-Node/utils"
)

func main() {
	// Load environment variables
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to PostgreSQL database
	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Run versioned schema migrations
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("Failed to access database handle: %v", err)
	}
	if err := migrations.Apply(context.Background(), sqlDB); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret, time.Hour)

	// Set up Gin router with CORS configuration
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	controllers.RegisterRoutes(r, db, tokens)

	logrus.Infof("The server is running on %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
