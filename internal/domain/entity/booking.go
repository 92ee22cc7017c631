package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusArrived   BookingStatus = "arrived"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ShopTimezone anchors "today" and the slot clock to the shop's wall
// time, matching the timezone the database connection is pinned to.
// São Paulo has not observed DST since 2019, so the fixed-offset
// fallback is equivalent when tzdata is unavailable.
var ShopTimezone = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}()

// TimeSlots is the fixed daily slot enumeration offered by the shop.
var TimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00",
}

// HaircutStyles is the style catalog shown on the booking form.
// Free text is tolerated on input, so the catalog is advisory.
var HaircutStyles = []string{
	"Degradê",
	"Social",
	"Militar",
	"Undercut",
	"Navalhado",
	"Barba e Cabelo",
	"Personalizado",
}

// Booking represents one scheduled appointment record
type Booking struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientName        string        `gorm:"type:varchar(255);not null" json:"client_name"`
	ClientPhone       string        `gorm:"type:varchar(20);not null;index" json:"client_phone"`
	BookingDate       time.Time     `gorm:"type:date;not null;index" json:"booking_date"`
	BookingTime       string        `gorm:"type:varchar(5);not null" json:"booking_time"`
	HaircutStyle      string        `gorm:"type:varchar(100);not null" json:"haircut_style"`
	Rating            *int          `gorm:"type:int" json:"rating,omitempty"`
	Comment           *string       `gorm:"type:text" json:"comment,omitempty"`
	Status            BookingStatus `gorm:"type:booking_status;not null;default:'pending';index" json:"status"`
	ConfirmationToken string        `gorm:"type:varchar(32);uniqueIndex;not null" json:"confirmation_token"`
	UserID            *uuid.UUID    `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt         time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// allowedTransitions maps each status to the statuses an admin may move it to.
// Completed and cancelled are terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending: {BookingStatusArrived, BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusArrived: {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransitionTo reports whether moving the booking from its current
// status to target is a valid lifecycle transition.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, s := range allowedTransitions[b.Status] {
		if s == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the booking reached a final status.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}

// IsActive reports whether the booking still counts toward the daily queue.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusArrived
}

// IsOwnedBy checks whether the booking belongs to the given account.
func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.UserID != nil && *b.UserID == userID
}

// ValidStatus reports whether s is one of the four lifecycle statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusArrived, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// ValidRating accepts a nil rating ("not rated") or a value in [1,5].
func ValidRating(rating *int) bool {
	if rating == nil {
		return true
	}
	return *rating >= 1 && *rating <= 5
}

// ValidTimeSlot reports whether t is one of the fixed daily slots.
func ValidTimeSlot(t string) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}
