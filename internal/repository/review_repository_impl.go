package repository

import (
	"mka-cortes-backend/internal/domain/entity"
	domainRepo "mka-cortes-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

// FindAll reads from the public_reviews view, which already redacts
// contact fields and excludes unrated bookings.
func (r *reviewRepository) FindAll(db *gorm.DB) ([]entity.PublicReview, error) {
	var reviews []entity.PublicReview
	err := db.Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
