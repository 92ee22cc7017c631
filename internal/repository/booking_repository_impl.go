package repository

import (
	"errors"
	"time"

	"mka-cortes-backend/internal/domain/entity"
	domainRepo "mka-cortes-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// FindAll returns every booking, newest appointment first, matching the
// default ordering of the admin dashboard.
func (r *bookingRepository) FindAll(db *gorm.DB) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Order("booking_date DESC").
		Order("booking_time DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByDate returns the bookings of one calendar day ordered by slot,
// which is the shape the daily queue consumes.
func (r *bookingRepository) FindByDate(db *gorm.DB, date time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("booking_date = ?", date.Format("2006-01-02")).
		Order("booking_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("user_id = ?", userID).
		Order("booking_date DESC").
		Order("booking_time DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByTokenAndPhone resolves the unauthenticated self-service lookup.
// Phone digits are compared against the stored number with separators
// stripped, and the result is bounded to the most recent match.
func (r *bookingRepository) FindByTokenAndPhone(db *gorm.DB, token, phoneDigits string) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("confirmation_token = ?", token).
		Where("regexp_replace(client_phone, '\\D', '', 'g') = ?", phoneDigits).
		Order("created_at DESC").
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Update(db *gorm.DB, booking *entity.Booking) error {
	return db.Save(booking).Error
}

// UpdateStatus atomically moves a booking to the given status, refusing
// to touch terminal rows. Returns affected rows: 0 means the booking was
// already completed or cancelled by a concurrent admin session.
func (r *bookingRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.BookingStatus) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status NOT IN ?", id, []entity.BookingStatus{
			entity.BookingStatusCompleted,
			entity.BookingStatusCancelled,
		}).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *bookingRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Booking{})
	return result.RowsAffected, result.Error
}
