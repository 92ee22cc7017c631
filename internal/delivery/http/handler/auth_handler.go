package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/delivery/http/middleware"
	"mka-cortes-backend/internal/usecase"
	"mka-cortes-backend/pkg/response"
	"mka-cortes-backend/pkg/safeerror"
	"mka-cortes-backend/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Register handles client account registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Requisição inválida", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, safeerror.ErrAlreadyRegistered):
			response.Error(w, http.StatusConflict, safeerror.MsgEmailRegistered, nil)
		default:
			response.InternalServerError(w, safeerror.Message(err))
		}
		return
	}

	response.Success(w, http.StatusCreated, "Cadastro realizado com sucesso", user)
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Requisição inválida", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, safeerror.ErrInvalidCredentials):
			response.Error(w, http.StatusUnauthorized, safeerror.MsgBadCredentials, nil)
		case errors.Is(err, safeerror.ErrEmailNotConfirmed):
			response.Error(w, http.StatusForbidden, safeerror.MsgEmailUnverified, nil)
		default:
			response.InternalServerError(w, safeerror.Message(err))
		}
		return
	}

	response.Success(w, http.StatusOK, "Login realizado com sucesso", tokens)
}

// Logout revokes the caller's tokens
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	// Body is optional; the refresh token only matters if present.
	var req dto.LogoutRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.authUsecase.Logout(r.Context(), tokenID, req.RefreshToken); err != nil {
		response.InternalServerError(w, safeerror.Message(err))
		return
	}

	response.Success(w, http.StatusOK, "Logout realizado com sucesso", nil)
}

// RefreshToken rotates a refresh token into a new token pair
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Requisição inválida", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrTokenRevoked:
			response.Unauthorized(w, "Sessão expirada. Faça login novamente.")
		default:
			response.InternalServerError(w, safeerror.Message(err))
		}
		return
	}

	response.Success(w, http.StatusOK, "Token renovado com sucesso", tokens)
}

// GetCurrentUser returns the logged-in account
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, safeerror.MsgNotFound)
		default:
			response.InternalServerError(w, safeerror.Message(err))
		}
		return
	}

	response.Success(w, http.StatusOK, "", user)
}
