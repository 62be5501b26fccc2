package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"videoshare/cmd/config"
	"videoshare/pkg/database"
	"videoshare/pkg/handlers"
	"videoshare/pkg/logger"
	"videoshare/pkg/storage"
)

func main() {
	// A local .env is optional
	godotenv.Load()

	config.Load()
	logger.Init(config.LogLevel)

	db, err := database.Open(config.DBDialect, config.DBSource)
	if err != nil {
		logger.Error("failed to connect to database: ", err)
		os.Exit(1)
	}
	defer db.Close()

	store, err := storage.NewS3Store(config.AWSRegion, config.S3Bucket)
	if err != nil {
		logger.Error("failed to create object store client: ", err)
		os.Exit(1)
	}

	// Set up Gin router
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestLogger())

	api := handlers.New(db, store)
	api.Register(r)

	// Start the server
	logger.Info("API running on port ", config.Port)
	if err := r.Run(":" + config.Port); err != nil {
		logger.Error("server stopped: ", err)
		os.Exit(1)
	}
}
