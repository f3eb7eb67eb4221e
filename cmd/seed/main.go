package main

import (
	"log"
	"os"

	"ezpt/config"
	"ezpt/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the game variants, the regular roster, the shared guest slot and
// the admin account. Safe to run repeatedly; existing rows are left alone.
func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Player{},
		&models.GameType{},
		&models.Event{},
		&models.Session{},
		&models.Participant{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	defaultBuyIn := decimal.NewFromInt(20)
	gameTypes := []string{"Crazy", "Texas", "PLO", "Pineapple"}
	for _, name := range gameTypes {
		gameType := models.GameType{Name: name, DefaultBuyIn: defaultBuyIn}
		if err := db.Where("name = ?", name).FirstOrCreate(&gameType).Error; err != nil {
			log.Fatalf("Failed to seed game type %s: %v", name, err)
		}
	}

	players := []string{"ALEX", "RICO", "CESAR", "GHADZ", "SIMON", "JIJ", "THOMAS", "EDDY"}
	for _, name := range players {
		player := models.Player{Name: name, IsGuest: false, IsActive: true}
		if err := db.Where("name = ?", name).FirstOrCreate(&player).Error; err != nil {
			log.Fatalf("Failed to seed player %s: %v", name, err)
		}
	}

	guest := models.Player{Name: "Guest", IsGuest: true, IsActive: true}
	if err := db.Where("name = ?", guest.Name).FirstOrCreate(&guest).Error; err != nil {
		log.Fatal("Failed to seed guest player:", err)
	}

	if err := seedAdmin(db); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	log.Println("Seed complete.")
}

func seedAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin user")
		return nil
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Username:     username,
		PasswordHash: string(hash),
	}).Error
}
