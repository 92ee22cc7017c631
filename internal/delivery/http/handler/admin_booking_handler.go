package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/domain/entity"
	"mka-cortes-backend/internal/usecase"
	"mka-cortes-backend/pkg/response"
	"mka-cortes-backend/pkg/safeerror"
	"mka-cortes-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminBookingHandler struct {
	adminUsecase usecase.AdminBookingUsecase
	validator    *validator.CustomValidator
}

func NewAdminBookingHandler(adminUsecase usecase.AdminBookingUsecase, validator *validator.CustomValidator) *AdminBookingHandler {
	return &AdminBookingHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

// ListBookings returns all bookings narrowed by the filter bar query params
func (h *AdminBookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	filter := dto.BookingFilter{
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
		Style:  r.URL.Query().Get("style"),
	}

	bookings, err := h.adminUsecase.ListBookings(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, safeerror.Message(err))
		return
	}

	response.Success(w, http.StatusOK, "", bookings)
}

// GetStats returns the dashboard stat cards
func (h *AdminBookingHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, safeerror.Message(err))
		return
	}

	response.Success(w, http.StatusOK, "", stats)
}

// GetTodayQueue returns today's bookings grouped by status with the
// next-client pick. Clients poll this endpoint every 30 seconds.
func (h *AdminBookingHandler) GetTodayQueue(w http.ResponseWriter, r *http.Request) {
	queue, err := h.adminUsecase.GetTodayQueue(r.Context(), time.Now())
	if err != nil {
		response.InternalServerError(w, safeerror.Message(err))
		return
	}

	response.Success(w, http.StatusOK, "", queue)
}

// UpdateBooking applies a partial edit from the admin edit form
func (h *AdminBookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	var req dto.AdminUpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Requisição inválida", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.adminUsecase.UpdateBooking(r.Context(), bookingID, &req)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Agendamento atualizado", booking)
}

// MarkArrived is the one-click "chegou" action in the daily queue
func (h *AdminBookingHandler) MarkArrived(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, entity.BookingStatusArrived)
}

// MarkCompleted is the one-click "concluído" action in the daily queue
func (h *AdminBookingHandler) MarkCompleted(w http.ResponseWriter, r *http.Request) {
	h.changeStatus(w, r, entity.BookingStatusCompleted)
}

func (h *AdminBookingHandler) changeStatus(w http.ResponseWriter, r *http.Request, target entity.BookingStatus) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	booking, err := h.adminUsecase.ChangeStatus(r.Context(), bookingID, target)
	if err != nil {
		h.writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Status atualizado", booking)
}

// DeleteBooking removes a booking permanently
func (h *AdminBookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	if err := h.adminUsecase.DeleteBooking(r.Context(), bookingID); err != nil {
		h.writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Agendamento excluído", nil)
}

func (h *AdminBookingHandler) writeBookingError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrBookingNotFound:
		response.NotFound(w, safeerror.MsgNotFound)
	case usecase.ErrInvalidTransition:
		response.Error(w, http.StatusConflict, "Mudança de status não permitida", nil)
	case usecase.ErrInvalidDateFormat, usecase.ErrInvalidTimeSlot, usecase.ErrInvalidRating:
		response.Error(w, http.StatusBadRequest, "Dados inválidos", nil)
	default:
		response.InternalServerError(w, safeerror.Message(err))
	}
}

func parseBookingID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	bookingID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Identificador inválido", nil)
		return uuid.Nil, false
	}
	return bookingID, true
}
