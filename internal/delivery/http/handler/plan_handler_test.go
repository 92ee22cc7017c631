package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mka-cortes-backend/internal/delivery/dto"
	"mka-cortes-backend/pkg/response"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPlans(t *testing.T) {
	h := NewPlanHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil)
	rec := httptest.NewRecorder()
	h.ListPlans(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var list dto.PlanListResponse
	require.NoError(t, json.Unmarshal(raw, &list))

	require.Len(t, list.Plans, 3)
	assert.Equal(t, "Básico", list.Plans[0].Name)
	assert.True(t, decimal.NewFromInt(100).Equal(list.Plans[0].Price))
	assert.True(t, decimal.NewFromInt(150).Equal(list.Plans[1].Price))
	assert.True(t, decimal.NewFromInt(165).Equal(list.Plans[2].Price))
	assert.True(t, list.Plans[1].Popular)

	for _, plan := range list.Plans {
		assert.NotEmpty(t, plan.PaymentLink)
	}
}
