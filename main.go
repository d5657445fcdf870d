package main

import (
	"context"
	"log"
	"os"

	"cleverloo/config"
	"cleverloo/jobs"
	"cleverloo/models"
	"cleverloo/routes"
	"cleverloo/services/logger"
	"cleverloo/validator"
)

func migrate(app *config.App) {
	if err := app.DB.AutoMigrate(&models.User{}, &models.Restroom{}, &models.Room{}, &models.Review{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {
	ctx := context.Background()

	app, err := config.InitApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer app.Close()

	if err := validator.RegisterCustomValidations(); err != nil {
		log.Fatalf("Failed to register validations: %v", err)
	}

	migrate(app)

	scheduler := jobs.StartCronJobs(app.DB, logger.NewDefaultLogger(logger.InfoLevel))
	defer scheduler.Stop()

	routes.SetupRoutes(app.Router, app.DB, app.Redis, app.Cloudinary)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on port %s", port)
	if err := app.Router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
