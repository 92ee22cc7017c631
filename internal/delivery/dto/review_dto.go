package dto

import (
	"time"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}
