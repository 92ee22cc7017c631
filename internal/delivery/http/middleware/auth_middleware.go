package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"mka-cortes-backend/pkg/jwt"
	"mka-cortes-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RoleIDKey    contextKey = "role_id"
	TokenIDKey   contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.validateRequest(w, r)
		if !ok {
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
	})
}

// AuthenticateOptional attaches the user to the context when a valid
// token is present but lets anonymous requests through. The public
// booking form uses this to link bookings to logged-in clients.
func (m *AuthMiddleware) AuthenticateOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.claimsFromRequest(r)
		if err != nil {
			// Bad token on an optional route: treat as anonymous.
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
	})
}

func (m *AuthMiddleware) validateRequest(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	if r.Header.Get("Authorization") == "" {
		response.Unauthorized(w, "Authorization header is required")
		return nil, false
	}

	claims, err := m.claimsFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return nil, false
	}

	return claims, true
}

func (m *AuthMiddleware) claimsFromRequest(r *http.Request) (*jwt.Claims, error) {
	authHeader := r.Header.Get("Authorization")

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token")
	}

	if claims.TokenType != jwt.AccessToken {
		return nil, fmt.Errorf("invalid token type")
	}

	// Check the token was not revoked by logout.
	tokenKey := fmt.Sprintf("access_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to validate token")
	}
	if exists == 0 {
		return nil, fmt.Errorf("token has been revoked")
	}

	return claims, nil
}

func contextWithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
	ctx = context.WithValue(ctx, RoleIDKey, claims.RoleID)
	ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
	return ctx
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetRoleIDFromContext extracts role ID from context
func GetRoleIDFromContext(ctx context.Context) (int, bool) {
	roleID, ok := ctx.Value(RoleIDKey).(int)
	return roleID, ok
}
