package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"gocart/internal/auth"
	"gocart/internal/config"
	"gocart/internal/db"
	"gocart/internal/model"
	"gocart/internal/repository"
)

const (
	adminEmail    = "admin@gocart.local"
	adminUsername = "admin"
	adminPassword = "admin-change-me"
)

var starterProducts = []model.Product{
	{Name: "Mechanical Keyboard", Description: "Tenkeyless mechanical keyboard with hot-swappable switches.", Price: 129.99, ImageURL: "https://images.gocart.local/keyboard.jpg"},
	{Name: "Wireless Mouse", Description: "Ergonomic wireless mouse with adjustable DPI.", Price: 49.99, ImageURL: "https://images.gocart.local/mouse.jpg"},
	{Name: "USB-C Hub", Description: "7-in-1 USB-C hub with HDMI, card reader, and PD charging.", Price: 39.99, ImageURL: "https://images.gocart.local/hub.jpg"},
	{Name: "Laptop Stand", Description: "Adjustable aluminium laptop stand.", Price: 29.99, ImageURL: "https://images.gocart.local/stand.jpg"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	products := repository.NewProductRepository(gormDB)

	if err := seedAdmin(ctx, users); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	created, err := seedProducts(ctx, products)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Printf("Seed completed: %d products created", created)
}

func seedAdmin(ctx context.Context, users repository.UserRepository) error {
	_, err := users.FindByEmail(ctx, adminEmail)
	if err == nil {
		log.Printf("Admin user already exists: %s", adminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &model.User{
		Email:        adminEmail,
		Username:     adminUsername,
		PasswordHash: hashed,
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Admin user created: %s", adminEmail)
	return nil
}

func seedProducts(ctx context.Context, products repository.ProductRepository) (int, error) {
	existing, err := products.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Printf("Catalog already has %d products, skipping", len(existing))
		return 0, nil
	}

	created := 0
	for i := range starterProducts {
		if err := products.Create(ctx, &starterProducts[i]); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
