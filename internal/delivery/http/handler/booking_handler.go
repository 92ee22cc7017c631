package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/usecase"
	"mka-cortes-backend/pkg/response"
	"mka-cortes-backend/pkg/safeerror"
	"mka-cortes-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// CreateBooking handles the public booking form submission
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Requisição inválida", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidTimeSlot, usecase.ErrInvalidRating:
			response.Error(w, http.StatusBadRequest, "Dados inválidos", nil)
		default:
			response.InternalServerError(w, safeerror.Message(err))
		}
		return
	}

	response.Success(w, http.StatusCreated, "Agendamento realizado! Guarde seu código de confirmação.", booking)
}

// LookupBooking resolves a confirmation token + phone pair. An empty
// result is a normal outcome, answered as not found without error data.
func (h *BookingHandler) LookupBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.LookupBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Requisição inválida", nil)
		return
	}
	req.Token = strings.TrimSpace(req.Token)

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.LookupBooking(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, safeerror.Message(err))
		return
	}
	if booking == nil {
		response.NotFound(w, "Agendamento não encontrado. Verifique o código e telefone.")
		return
	}

	response.Success(w, http.StatusOK, "Agendamento encontrado", booking)
}

// GetMyBookings lists the bookings owned by the logged-in client
func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingUsecase.GetMyBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, safeerror.Message(err))
		return
	}

	response.Success(w, http.StatusOK, "", bookings)
}

// UpdateMyBooking edits one of the caller's own bookings
func (h *BookingHandler) UpdateMyBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Identificador inválido", nil)
		return
	}

	var req dto.UpdateOwnBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Requisição inválida", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.UpdateOwnBooking(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, safeerror.MsgNotFound)
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, safeerror.MsgPermission)
		case usecase.ErrBookingFinished:
			response.Error(w, http.StatusConflict, "Este agendamento já foi finalizado", nil)
		case usecase.ErrInvalidDateFormat, usecase.ErrInvalidTimeSlot, usecase.ErrInvalidRating:
			response.Error(w, http.StatusBadRequest, "Dados inválidos", nil)
		default:
			response.InternalServerError(w, safeerror.Message(err))
		}
		return
	}

	response.Success(w, http.StatusOK, "Agendamento atualizado", booking)
}
