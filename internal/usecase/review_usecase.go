package usecase

import (
	"context"
	"encoding/json"
	"time"

	"mka-cortes-backend/internal/converter"
	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	reviewsCacheKey = "public_reviews"
	reviewsCacheTTL = 5 * time.Minute
)

type ReviewUsecase interface {
	ListPublicReviews(ctx context.Context) (*dto.ReviewListResponse, error)
}

type reviewUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	reviewRepo  repository.ReviewRepository
	redisClient *redis.Client
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	redisClient *redis.Client,
) ReviewUsecase {
	return &reviewUsecase{
		db:          db,
		log:         log,
		reviewRepo:  reviewRepo,
		redisClient: redisClient,
	}
}

// ListPublicReviews serves the landing-page review wall from a short
// Redis cache; the view behind it only exposes redacted fields.
func (u *reviewUsecase) ListPublicReviews(ctx context.Context) (*dto.ReviewListResponse, error) {
	if cached, err := u.redisClient.Get(ctx, reviewsCacheKey).Bytes(); err == nil {
		var resp dto.ReviewListResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
		// Corrupt cache entry, fall through to the database.
	}

	reviews, err := u.reviewRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list public reviews: %+v", err)
		return nil, err
	}

	resp := &dto.ReviewListResponse{
		Reviews: converter.ReviewsToResponses(reviews),
		Total:   len(reviews),
	}

	if payload, err := json.Marshal(resp); err == nil {
		if err := u.redisClient.Set(ctx, reviewsCacheKey, payload, reviewsCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache public reviews (non-fatal): %+v", err)
		}
	}

	return resp, nil
}
