package entity

import (
	"time"

	"github.com/google/uuid"
)

// PublicReview is the redacted projection of a rated booking exposed on
// the public site. It is backed by the public_reviews view, which only
// selects the client's first name and never any contact field.
type PublicReview struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName string    `gorm:"column:first_name" json:"first_name"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (PublicReview) TableName() string {
	return "public_reviews"
}
