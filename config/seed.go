package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/gaolamthuy/admin-sub000/models"
)

// SeedAdminUser creates the initial admin account from ADMIN_USERNAME /
// ADMIN_PASSWORD when no user with that name exists yet. Skipped silently
// when the env vars are unset.
func SeedAdminUser() {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var cnt int64
	DB.Model(&models.User{}).Where("username = ?", username).Count(&cnt)
	if cnt > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin: hash failed: %v", err)
		return
	}
	if err := DB.Create(&models.User{
		Username:     username,
		FullName:     "Administrator",
		Role:         "admin",
		PasswordHash: string(hash),
		IsActive:     true,
	}).Error; err != nil {
		log.Printf("seed admin: create failed: %v", err)
		return
	}
	log.Printf("seed admin: created user %q", username)
}
