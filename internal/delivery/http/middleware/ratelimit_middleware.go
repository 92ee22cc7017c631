package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"mka-cortes-backend/config"
	"mka-cortes-backend/internal/metrics"
	"mka-cortes-backend/pkg/response"

	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles the unauthenticated booking lookup per
// client IP. Limiters live in a sync.Map keyed by address.
type RateLimitMiddleware struct {
	limiters sync.Map
	cfg      config.RateLimitConfig
}

func NewRateLimitMiddleware(cfg config.RateLimitConfig) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		cfg: cfg,
	}
}

func (m *RateLimitMiddleware) getLimiter(key string) *rate.Limiter {
	if v, ok := m.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	burst := m.cfg.LookupBurst
	if burst <= 0 {
		burst = 5
	}

	lim := rate.NewLimiter(rate.Limit(m.cfg.LookupRPS), burst)
	actual, loaded := m.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}

func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.getLimiter(clientIP(r)).Allow() {
			metrics.IncLookupThrottled()
			response.Error(w, http.StatusTooManyRequests, "Muitas tentativas. Aguarde um momento e tente novamente.", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP keys the limiter by the first hop of X-Forwarded-For, the
// address the reverse proxy saw. Using the full header would let a
// caller rotate keys with every request.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
