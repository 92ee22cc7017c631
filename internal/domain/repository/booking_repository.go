package repository

import (
	"time"

	"mka-cortes-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindAll(db *gorm.DB) ([]entity.Booking, error)
	FindByDate(db *gorm.DB, date time.Time) ([]entity.Booking, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Booking, error)
	FindByTokenAndPhone(db *gorm.DB, token, phoneDigits string) (*entity.Booking, error)
	Update(db *gorm.DB, booking *entity.Booking) error
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.BookingStatus) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
