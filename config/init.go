package config

import (
	"context"
	"fmt"
	"log"

	"cleverloo/middleware"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App bundles the process-lifetime components. They are constructed once at
// startup and injected where needed.
type App struct {
	Router     *gin.Engine
	DB         *gorm.DB
	Redis      *redis.Client
	Cloudinary *cloudinary.Cloudinary
}

// InitApp wires the engine, CORS, and the external clients.
func InitApp(ctx context.Context) (*App, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))
	router.Use(middleware.RequestIDMiddleware())

	router.SetTrustedProxies(nil)

	LoadEnv()

	db, err := ConnectDB()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	rdb, err := ConnectRedis(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cld, err := ConnectCloudinary()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	log.Println("All components initialized successfully")

	return &App{
		Router:     router,
		DB:         db,
		Redis:      rdb,
		Cloudinary: cld,
	}, nil
}

// Close releases the clients on shutdown.
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
