package converter

import (
	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/domain/entity"
)

// ReviewsToResponses converts PublicReview rows to response DTOs
func ReviewsToResponses(reviews []entity.PublicReview) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = dto.ReviewResponse{
			ID:        review.ID,
			FirstName: review.FirstName,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		}
	}
	return responses
}

// PlansToResponses converts the static plan catalog to response DTOs
func PlansToResponses(plans []entity.SubscriptionPlan) []dto.PlanResponse {
	responses := make([]dto.PlanResponse, len(plans))
	for i, plan := range plans {
		responses[i] = dto.PlanResponse{
			ID:          plan.ID,
			Name:        plan.Name,
			Price:       plan.Price,
			Services:    plan.Services,
			Popular:     plan.Popular,
			PaymentLink: plan.PaymentLink,
		}
	}
	return responses
}
