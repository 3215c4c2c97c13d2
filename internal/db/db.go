package db

import (
	"log"
	"os"

	"scuttlebutt/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=scuttlebutt port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Article{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed initial topics
	seedTopics()
}

func seedTopics() {
	var count int64
	DB.Model(&models.Topic{}).Count(&count)
	if count > 0 {
		log.Println("Topics already seeded, skipping")
		return
	}

	topics := []models.Topic{
		{Slug: "coding", Description: "Code is love, code is life"},
		{Slug: "football", Description: "FOOTIE!"},
		{Slug: "cooking", Description: "Hey good looking, what you got cooking?"},
	}

	for _, topic := range topics {
		if err := DB.Create(&topic).Error; err != nil {
			log.Printf("Failed to create topic %s: %v", topic.Slug, err)
		}
	}
	log.Println("Initial topics created successfully")
}
