package main

import (
	"log"
	"os"

	"catering-api/config"
	_ "catering-api/docs"
	"catering-api/middleware"
	"catering-api/routes"

	"github.com/gin-gonic/gin"
)

// @title Catering API
// @version 1.0
// @description REST backend for a catering service: menu, cart, bookings, reviews and accounts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	config.ConnectDB()
	defer config.CloseDB()

	rdb := config.InitRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Static("/uploads", config.AppConfig.UploadDir)

	routes.SetupRoutes(router, config.DB, rdb)

	log.Printf("Server starting on port %s", config.AppConfig.Port)
	if err := router.Run(":" + config.AppConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
