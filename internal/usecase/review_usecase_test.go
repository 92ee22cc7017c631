package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"mka-cortes-backend/internal/delivery/dto"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A warm cache answers the review wall without touching the database,
// which is what keeps the 30-second polling cheap.
func TestListPublicReviewsCacheHit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cached := dto.ReviewListResponse{
		Reviews: []dto.ReviewResponse{
			{ID: uuid.New(), FirstName: "João", Rating: 5},
		},
		Total: 1,
	}
	payload, err := json.Marshal(&cached)
	require.NoError(t, err)
	require.NoError(t, mr.Set(reviewsCacheKey, string(payload)))

	u := NewReviewUsecase(nil, logrus.New(), nil, client)

	resp, err := u.ListPublicReviews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &cached, resp)
}
