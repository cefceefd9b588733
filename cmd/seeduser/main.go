// cmd/seeduser/main.go — crée ou met à jour l'utilisateur de démo.
// Usage: go run cmd/seeduser/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "sales.db"
	}
	username := "admin"
	password := "1234"
	email := "admin@quickcrm.local"
	role := "sales"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}

	result := db.WithContext(context.Background()).Exec(`
		INSERT INTO users (username, email, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (username) DO UPDATE
		SET password_hash = excluded.password_hash,
		    email = excluded.email,
		    role = excluded.role,
		    updated_at = CURRENT_TIMESTAMP
	`, username, email, string(hash), role)

	if result.Error != nil {
		log.Fatalf("insert error: %v", result.Error)
	}
	fmt.Printf("✅ Utilisateur '%s' créé/mis à jour avec le mot de passe '%s'\n", username, password)
}
