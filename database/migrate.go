package database

import (
	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей.
// Уникальные индексы (email, имя компании) создаются здесь же,
// поэтому уникальность держит БД, а не только проверки в коде.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
	)
}
