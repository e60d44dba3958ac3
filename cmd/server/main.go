package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"gocart/internal/auth"
	"gocart/internal/cache"
	"gocart/internal/config"
	"gocart/internal/db"
	"gocart/internal/graph"
	"gocart/internal/model"
	"gocart/internal/repository"
	"gocart/internal/router"
	"gocart/internal/service"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, cacheClient, log)
	cartService := service.NewCartService(cartRepo, productRepo, log)

	// Parse the GraphQL schema against the root resolver
	resolver := graph.NewResolver(cfg, authService, userService, productService, cartService, log)
	schema := graph.NewSchema(resolver)

	e := echo.New()
	router.Register(e, schema, jwtService)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
