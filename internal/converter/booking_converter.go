package converter

import (
	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:           booking.ID,
		ClientName:   booking.ClientName,
		ClientPhone:  booking.ClientPhone,
		BookingDate:  booking.BookingDate.Format("2006-01-02"),
		BookingTime:  booking.BookingTime,
		HaircutStyle: booking.HaircutStyle,
		Rating:       booking.Rating,
		Comment:      booking.Comment,
		Status:       string(booking.Status),
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resp := BookingToResponse(&booking)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
