package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mka-cortes-backend/config"

	"github.com/stretchr/testify/assert"
)

func lookupRequest(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/lookup", nil)
	req.RemoteAddr = ip + ":51234"
	return req
}

func TestRateLimitBurstThenThrottle(t *testing.T) {
	m := NewRateLimitMiddleware(config.RateLimitConfig{LookupRPS: 1, LookupBurst: 3})

	handler := m.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, lookupRequest("203.0.113.7"))
		assert.Equal(t, http.StatusOK, rec.Code, "request %d inside burst", i+1)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, lookupRequest("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Muitas tentativas")
}

func TestRateLimitIsPerClient(t *testing.T) {
	m := NewRateLimitMiddleware(config.RateLimitConfig{LookupRPS: 1, LookupBurst: 1})

	handler := m.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, lookupRequest("203.0.113.7"))
	assert.Equal(t, http.StatusOK, first.Code)

	throttled := httptest.NewRecorder()
	handler.ServeHTTP(throttled, lookupRequest("203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, throttled.Code)

	// A different address gets its own limiter.
	other := httptest.NewRecorder()
	handler.ServeHTTP(other, lookupRequest("198.51.100.9"))
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestClientIPPrefersForwardedHeader(t *testing.T) {
	req := lookupRequest("203.0.113.7")
	req.Header.Set("X-Forwarded-For", "198.51.100.9")
	assert.Equal(t, "198.51.100.9", clientIP(req))

	assert.Equal(t, "203.0.113.7", clientIP(lookupRequest("203.0.113.7")))
}

// Only the first hop of a forwarded chain keys the limiter, so padding
// the header does not mint a fresh limiter per request.
func TestClientIPUsesFirstForwardedHop(t *testing.T) {
	req := lookupRequest("203.0.113.7")
	req.Header.Set("X-Forwarded-For", "198.51.100.9, 10.0.0.1, 172.16.0.2")
	assert.Equal(t, "198.51.100.9", clientIP(req))

	blank := lookupRequest("203.0.113.7")
	blank.Header.Set("X-Forwarded-For", " , 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(blank))
}

func TestRateLimitIgnoresForwardedPadding(t *testing.T) {
	m := NewRateLimitMiddleware(config.RateLimitConfig{LookupRPS: 1, LookupBurst: 1})

	handler := m.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	forwarded := func(chain string) *http.Request {
		req := lookupRequest("203.0.113.7")
		req.Header.Set("X-Forwarded-For", chain)
		return req
	}

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, forwarded("198.51.100.9"))
	assert.Equal(t, http.StatusOK, first.Code)

	// Same origin, different chain suffix: still the same limiter.
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, forwarded("198.51.100.9, 10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
