package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/realtexai/realtex-api/config"
	"github.com/realtexai/realtex-api/pkg/helpers"
)

// Seeds the first administrator so someone can start inviting users.
// The account is created active with a password, bypassing the invitation
// flow on purpose.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.SeedAdminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is required")
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, first_name, is_admin, is_active)
		VALUES ($1, $2, $3, true, true)
		ON CONFLICT (email) DO UPDATE SET is_admin = true, is_active = true
		RETURNING id
	`, cfg.SeedAdminEmail, hash, "Admin").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s\n", id, cfg.SeedAdminEmail)
}
