package repositories

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wolfyek/client-gallery/internal/models"
)

// ConnectDatabase opens the Postgres connection and migrates the schema.
// Galleries carry their photo list as a JSON document, so the schema is
// three flat tables.
func ConnectDatabase(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = db.AutoMigrate(
		&models.Gallery{},
		&models.ActivityLog{},
		&models.DownloadLog{},
	)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Successfully connected to database")
	return db
}
