package db

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/homehero/booking-app/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.StaffMember{},
		&models.Profile{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedAdmin()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedAdmin creates the dashboard admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skipped when the variables are unset or the account exists.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	if DB.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %s", email)
}
