package database

import (
	"log"

	"github.com/internlink-app/internlink-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: creates the tables in Postgres automatically. The sessions
	// table is owned by the external identity system; migrating it here keeps
	// local development self-contained.
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Document{},
		&models.Company{},
		&models.Application{},
	); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
