package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bizreview/backend/internal/models"
	"go.uber.org/zap"
)

// TokenVerifier is the interface that wraps bearer token verification
type TokenVerifier interface {
	// Method Verify returns the user ID bound to a valid token.
	Verify(token string) (string, error)
}

// IdentityResolver is the interface that wraps loading the identity of an authenticated user
type IdentityResolver interface {
	// Method Identity returns the identity of userID.
	//
	// models.ErrUnauthenticated is returned when the user no longer exists.
	Identity(ctx context.Context, userID models.ID) (models.Identity, error)
}

// RequireAuthentication validates the bearer token and attaches the caller's identity to the request context.
// Requests without a valid token are rejected with 401.
func RequireAuthentication(tokens TokenVerifier, users IdentityResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			identity, err := resolve(r.Context(), token, tokens, users)
			if err != nil {
				if errors.Is(err, models.ErrUnauthenticated) {
					writeError(w, http.StatusUnauthorized, "invalid authentication token")
					return
				}
				logger.Error("failed to resolve identity",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.Error(err),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// AdminOptional attaches the caller's identity when a valid bearer token is present.
// A missing or invalid token leaves the request anonymous instead of rejecting it.
func AdminOptional(tokens TokenVerifier, users IdentityResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := resolve(r.Context(), token, tokens, users)
			if err != nil {
				if !errors.Is(err, models.ErrUnauthenticated) {
					logger.Warn("failed to resolve optional identity",
						zap.String("request_id", GetRequestID(r.Context())),
						zap.Error(err),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// IdentityFromContext returns the identity attached by the auth middleware, or the anonymous identity
func IdentityFromContext(ctx context.Context) models.Identity {
	identity, _ := ctx.Value(identityKey).(models.Identity)
	return identity
}

// WithIdentity returns a copy of ctx carrying identity
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// resolve verifies the token and loads the identity. Token failures are reported as models.ErrUnauthenticated.
func resolve(ctx context.Context, token string, tokens TokenVerifier, users IdentityResolver) (models.Identity, error) {
	userID, err := tokens.Verify(token)
	if err != nil {
		return models.Identity{}, models.ErrUnauthenticated
	}
	return users.Identity(ctx, models.ID(userID))
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
