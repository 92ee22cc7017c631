package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	ClientName   string  `json:"client_name" validate:"required,min=3,max=255"`
	ClientPhone  string  `json:"client_phone" validate:"required,brphone"`
	BookingDate  string  `json:"booking_date" validate:"required"` // Format: YYYY-MM-DD
	BookingTime  string  `json:"booking_time" validate:"required"`
	HaircutStyle string  `json:"haircut_style" validate:"required,max=100"`
	Rating       *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment      *string `json:"comment" validate:"omitempty,max=2000"`
}

type LookupBookingRequest struct {
	Token string `json:"token" validate:"required,max=32"`
	Phone string `json:"phone" validate:"required,brphone"`
}

// UpdateOwnBookingRequest lets a logged-in client adjust their own
// appointment. Status is deliberately absent: only admins move status.
type UpdateOwnBookingRequest struct {
	BookingDate  *string `json:"booking_date" validate:"omitempty"`
	BookingTime  *string `json:"booking_time" validate:"omitempty"`
	HaircutStyle *string `json:"haircut_style" validate:"omitempty,max=100"`
	Rating       *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment      *string `json:"comment" validate:"omitempty,max=2000"`
}

type AdminUpdateBookingRequest struct {
	ClientName   *string `json:"client_name" validate:"omitempty,min=3,max=255"`
	ClientPhone  *string `json:"client_phone" validate:"omitempty,brphone"`
	BookingDate  *string `json:"booking_date" validate:"omitempty"`
	BookingTime  *string `json:"booking_time" validate:"omitempty"`
	HaircutStyle *string `json:"haircut_style" validate:"omitempty,max=100"`
	Rating       *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment      *string `json:"comment" validate:"omitempty,max=2000"`
	Status       *string `json:"status" validate:"omitempty,oneof=pending arrived completed cancelled"`
}

// BookingFilter mirrors the dashboard filter bar: substring on name,
// exact status, exact style; "all" (or empty) disables a predicate.
type BookingFilter struct {
	Search string
	Status string
	Style  string
}

// Response DTOs

type CreateBookingResponse struct {
	ID                uuid.UUID `json:"id"`
	ConfirmationToken string    `json:"confirmation_token"`
}

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	ClientName   string    `json:"client_name"`
	ClientPhone  string    `json:"client_phone"`
	BookingDate  string    `json:"booking_date"`
	BookingTime  string    `json:"booking_time"`
	HaircutStyle string    `json:"haircut_style"`
	Rating       *int      `json:"rating,omitempty"`
	Comment      *string   `json:"comment,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// BookingStatsResponse feeds the dashboard stat cards. Pending counts
// pending and arrived together, the way the original cards did.
type BookingStatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// TodayBucketResponse is one daily-queue column.
type TodayBucketResponse struct {
	Status   string            `json:"status"`
	Count    int               `json:"count"`
	Bookings []BookingResponse `json:"bookings"`
}

type TodayQueueResponse struct {
	Date         string                `json:"date"`
	Buckets      []TodayBucketResponse `json:"buckets"`
	NextClientID *uuid.UUID            `json:"next_client_id,omitempty"`
	Stats        BookingStatsResponse  `json:"stats"`
}
