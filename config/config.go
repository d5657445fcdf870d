package config

import (
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

// LoadEnv loads .env if present; deployed environments rely on real env vars.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

// ConnectCloudinary builds the image hosting client from CLOUDINARY_URL.
func ConnectCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.New()
}
