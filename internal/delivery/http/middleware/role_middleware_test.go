package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mka-cortes-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	return req.WithContext(context.WithValue(req.Context(), RoleIDKey, roleID))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(okHandler())

	admin := httptest.NewRecorder()
	handler.ServeHTTP(admin, requestWithRole(entity.RoleIDAdmin))
	assert.Equal(t, http.StatusOK, admin.Code)

	client := httptest.NewRecorder()
	handler.ServeHTTP(client, requestWithRole(entity.RoleIDClient))
	assert.Equal(t, http.StatusForbidden, client.Code)
	assert.Contains(t, client.Body.String(), "Acesso não autorizado")
}

func TestRequireRoleWithoutClaims(t *testing.T) {
	handler := RequireAdmin(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleAllowsAnyListedRole(t *testing.T) {
	handler := RequireRole(entity.RoleIDAdmin, entity.RoleIDClient)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleIDClient))
	assert.Equal(t, http.StatusOK, rec.Code)
}
