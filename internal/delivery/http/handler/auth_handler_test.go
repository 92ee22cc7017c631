package handler

import (
	"context"
	"net/http"
	"testing"

	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/pkg/safeerror"
	"mka-cortes-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubAuthUsecase struct {
	registerErr error
	loginErr    error
}

func (s *stubAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &dto.UserResponse{ID: uuid.New(), Email: req.Email, FullName: req.FullName, Role: "client"}, nil
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, nil
}

func (s *stubAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshToken string) error {
	return nil
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return nil, nil
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return nil, nil
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{loginErr: safeerror.ErrInvalidCredentials}, validator.NewValidator())

	rec := postJSON(t, h.Login, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "joao@example.com",
		Password: "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), safeerror.MsgBadCredentials)
}

func TestLoginRejectsUnconfirmedAccount(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{loginErr: safeerror.ErrEmailNotConfirmed}, validator.NewValidator())

	rec := postJSON(t, h.Login, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "joao@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), safeerror.MsgEmailUnverified)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{registerErr: safeerror.ErrAlreadyRegistered}, validator.NewValidator())

	rec := postJSON(t, h.Register, "/api/v1/auth/register", dto.RegisterRequest{
		Email:    "joao@example.com",
		Password: "secret123",
		FullName: "João Silva",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), safeerror.MsgEmailRegistered)
}

func TestRegisterSuccess(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, validator.NewValidator())

	rec := postJSON(t, h.Register, "/api/v1/auth/register", dto.RegisterRequest{
		Email:    "joao@example.com",
		Password: "secret123",
		FullName: "João Silva",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cadastro realizado com sucesso")
}
