package repository

import (
	"mka-cortes-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	FindAll(db *gorm.DB) ([]entity.PublicReview, error)
}
