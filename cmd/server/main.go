package main

import (
	"log"
	"net/http"
	"os"

	_ "petboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"petboard/internal/auth"
	"petboard/internal/cache"
	"petboard/internal/config"
	"petboard/internal/db"
	"petboard/internal/handler"
	"petboard/internal/model"
	"petboard/internal/payment"
	"petboard/internal/repository"
	"petboard/internal/router"
	"petboard/internal/service"
)

// @title Petboard API
// @version 1.0
// @description Pet boarding records API with signup/login, pet CRUD, and hosted payment checkout.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range []interface{}{&model.Pet{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(&model.User{}, &model.Pet{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	petRepo := repository.NewPetRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize payment gateway client
	gateway := payment.NewClient(cfg.StripeAPIURL, cfg.StripeSecretKey, cfg.StripePriceID, cfg.CanonicalURL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	petService := service.NewPetService(petRepo, cacheClient)
	checkoutService := service.NewCheckoutService(gateway)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	petHandler := handler.NewPetHandler(petService)
	paymentHandler := handler.NewPaymentHandler(checkoutService)

	// Register routes
	router.Register(e, cfg, authHandler, petHandler, paymentHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
