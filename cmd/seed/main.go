package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"petboard/internal/config"
	"petboard/internal/db"
	"petboard/internal/model"
	"petboard/internal/repository"
	"petboard/internal/validation"
)

const (
	demoEmail    = "demo@petboard.dev"
	demoPassword = "demo1234"
)

var demoPets = []model.Pet{
	{Name: "Rex", OwnerName: "Al", ImageURL: validation.DefaultPetImage, Age: 3, Notes: "Allergic to peanuts"},
	{Name: "Bella", OwnerName: "Sam", ImageURL: validation.DefaultPetImage, Age: 5, Notes: ""},
	{Name: "Milo", OwnerName: "Kim", ImageURL: validation.DefaultPetImage, Age: 1, Notes: "Needs medication at 8am"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Pet{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	petRepo := repository.NewPetRepository(gormDB)

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	if err == gorm.ErrRecordNotFound {
		hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		user = &model.User{Email: demoEmail, PasswordHash: string(hashed)}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s", demoEmail)
	} else if err != nil {
		log.Fatalf("Failed to look up demo user: %v", err)
	} else {
		log.Printf("Demo user %s already exists", demoEmail)
	}

	existing, err := petRepo.ListByUser(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to list demo pets: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Demo user already has %d pets, nothing to do", len(existing))
		return
	}

	for _, pet := range demoPets {
		pet.UserID = user.ID
		if err := petRepo.Create(ctx, &pet); err != nil {
			log.Fatalf("Failed to create pet %s: %v", pet.Name, err)
		}
	}
	log.Printf("Seeded %d pets for %s", len(demoPets), demoEmail)
}
