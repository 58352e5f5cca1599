package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tactify-cms/models"
)

// InitDB opens the database and syncs the schema. Schema sync is a
// one-shot operation at boot; there is no migration tooling here.
func InitDB(cfg *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}

// Migrate syncs the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Session{},
		&models.Post{},
		&models.Trivia{},
	)
}
