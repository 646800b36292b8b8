package migration

import (
	"github.com/sparkmeet/sparkmeet-backend/internal/domain"
	"gorm.io/gorm"
)

// Run creates or updates the schema for all models
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Member{},
		&domain.Like{},
		&domain.Message{},
	)
}
