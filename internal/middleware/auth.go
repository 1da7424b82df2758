package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"mskn-backend/internal/access"
	"mskn-backend/internal/apperr"
	"mskn-backend/internal/models"
	"mskn-backend/pkg/utils"
)

type contextKey string

const (
	userKey  contextKey = "user"
	tokenKey contextKey = "token"
)

// Authenticator resolves a bearer token to the current user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate is a middleware that validates bearer tokens and loads the user
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Error(w, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		user, err := m.auth.Authenticate(r.Context(), parts[1])
		if err != nil {
			var appErr *apperr.Error
			if errors.As(err, &appErr) && appErr.Status == http.StatusUnauthorized {
				utils.Error(w, http.StatusUnauthorized, appErr.Message)
				return
			}
			utils.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		noteUser(r.Context(), user.ID)
		ctx := context.WithValue(r.Context(), userKey, user)
		ctx = context.WithValue(ctx, tokenKey, parts[1])

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole lets the request through only when the authenticated user has
// one of the allowed roles. It must run after Authenticate and fails closed.
func (m *AuthMiddleware) RequireRole(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				utils.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if !id.Is(allowedRoles...) {
				utils.Error(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the user loaded by Authenticate.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

func IdentityFromContext(ctx context.Context) (access.Identity, bool) {
	user, ok := UserFromContext(ctx)
	if !ok {
		return access.Identity{}, false
	}
	return access.Identity{UserID: user.ID, Role: user.Role}, true
}

// TokenFromContext returns the raw bearer token of the request.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// WithUser attaches a user as Authenticate would.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}
