// Seeds the first admin account. Run with:
//   ADMIN_EMAIL=... ADMIN_PASSWORD=... go run ./scripts/create_admin.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/paydesk/paydesk-backend-go/internal/config"
	"github.com/paydesk/paydesk-backend-go/internal/domain/user"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/database"
	"github.com/paydesk/paydesk-backend-go/internal/repository/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.StatementTimeout)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)

	if _, err := userRepo.GetByEmail(ctx, email); err == nil {
		fmt.Println("Admin user already exists with email:", email)
		os.Exit(0)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	created, err := userRepo.Create(ctx, user.User{
		Email:        email,
		PasswordHash: string(hashed),
		Role:         user.RoleAdmin,
	})
	if err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}

	fmt.Println("Admin user created successfully")
	fmt.Println("   ID:   ", created.ID)
	fmt.Println("   Email:", created.Email)
}
