package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/usecase"
	"mka-cortes-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingUsecase struct {
	createFn func(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error)
	lookupFn func(ctx context.Context, req *dto.LookupBookingRequest) (*dto.BookingResponse, error)
}

func (s *stubBookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubBookingUsecase) LookupBooking(ctx context.Context, req *dto.LookupBookingRequest) (*dto.BookingResponse, error) {
	return s.lookupFn(ctx, req)
}

func (s *stubBookingUsecase) GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	return &dto.BookingListResponse{Bookings: []dto.BookingResponse{}}, nil
}

func (s *stubBookingUsecase) UpdateOwnBooking(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateOwnBookingRequest) (*dto.BookingResponse, error) {
	return nil, usecase.ErrBookingNotFound
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ClientName:   "João Silva",
		ClientPhone:  "(11) 98765-4321",
		BookingDate:  "2025-03-15",
		BookingTime:  "14:00",
		HaircutStyle: "Degradê",
	}
}

func TestCreateBooking(t *testing.T) {
	created := &dto.CreateBookingResponse{ID: uuid.New(), ConfirmationToken: "A1B2C3D4"}
	stub := &stubBookingUsecase{
		createFn: func(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
			assert.Equal(t, "João Silva", req.ClientName)
			return created, nil
		},
	}
	h := NewBookingHandler(stub, validator.NewValidator())

	rec := postJSON(t, h.CreateBooking, "/api/v1/bookings", validCreateRequest())

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ConfirmationToken)
	assert.Contains(t, rec.Body.String(), "Guarde seu código")
}

func TestCreateBookingRejectsBadPhone(t *testing.T) {
	stub := &stubBookingUsecase{
		createFn: func(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
			t.Fatal("usecase must not be reached on validation failure")
			return nil, nil
		},
	}
	h := NewBookingHandler(stub, validator.NewValidator())

	req := validCreateRequest()
	req.ClientPhone = "not-a-phone"
	rec := postJSON(t, h.CreateBooking, "/api/v1/bookings", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dados inválidos")
}

func TestCreateBookingRejectsBadSlot(t *testing.T) {
	stub := &stubBookingUsecase{
		createFn: func(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
			return nil, usecase.ErrInvalidTimeSlot
		},
	}
	h := NewBookingHandler(stub, validator.NewValidator())

	req := validCreateRequest()
	req.BookingTime = "03:00"
	rec := postJSON(t, h.CreateBooking, "/api/v1/bookings", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingHidesInternalError(t *testing.T) {
	stub := &stubBookingUsecase{
		createFn: func(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
			return nil, assert.AnError
		},
	}
	h := NewBookingHandler(stub, validator.NewValidator())

	rec := postJSON(t, h.CreateBooking, "/api/v1/bookings", validCreateRequest())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ocorreu um erro")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestLookupBookingFound(t *testing.T) {
	stub := &stubBookingUsecase{
		lookupFn: func(ctx context.Context, req *dto.LookupBookingRequest) (*dto.BookingResponse, error) {
			// Surrounding whitespace on the token is user noise, not data.
			assert.Equal(t, "A1B2C3D4", req.Token)
			return &dto.BookingResponse{ID: uuid.New(), ClientName: "João Silva", Status: "pending"}, nil
		},
	}
	h := NewBookingHandler(stub, validator.NewValidator())

	rec := postJSON(t, h.LookupBooking, "/api/v1/bookings/lookup", dto.LookupBookingRequest{
		Token: "  A1B2C3D4  ",
		Phone: "11987654321",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "João Silva")
}

func TestLookupBookingMiss(t *testing.T) {
	stub := &stubBookingUsecase{
		lookupFn: func(ctx context.Context, req *dto.LookupBookingRequest) (*dto.BookingResponse, error) {
			return nil, nil
		},
	}
	h := NewBookingHandler(stub, validator.NewValidator())

	rec := postJSON(t, h.LookupBooking, "/api/v1/bookings/lookup", dto.LookupBookingRequest{
		Token: "WRONG000",
		Phone: "11987654321",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Agendamento não encontrado")
}
