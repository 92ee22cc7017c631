package handler

import (
	"net/http"

	"mka-cortes-backend/internal/usecase"
	"mka-cortes-backend/pkg/response"
	"mka-cortes-backend/pkg/safeerror"
)

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
	}
}

// ListReviews serves the public review wall
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewUsecase.ListPublicReviews(r.Context())
	if err != nil {
		response.InternalServerError(w, safeerror.Message(err))
		return
	}

	response.Success(w, http.StatusOK, "", reviews)
}
