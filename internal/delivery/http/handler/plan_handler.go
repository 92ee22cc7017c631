package handler

import (
	"net/http"

	"mka-cortes-backend/internal/converter"
	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/domain/entity"
	"mka-cortes-backend/pkg/response"
)

type PlanHandler struct {
}

func NewPlanHandler() *PlanHandler {
	return &PlanHandler{}
}

// ListPlans serves the static subscription plan catalog. Checkout
// happens on the payment provider via each plan's link.
func (h *PlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "", dto.PlanListResponse{
		Plans: converter.PlansToResponses(entity.SubscriptionPlans),
	})
}
