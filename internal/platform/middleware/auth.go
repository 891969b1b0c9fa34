package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"caresignal/internal/platform/metrics"
	"caresignal/pkg/domain"
)

// ActorClaims are the JWT claims issued by the portal's identity provider.
// Only the fields this service needs are decoded.
type ActorClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type actorKey struct{}

// Actor identifies the authenticated caller for the duration of a request.
type Actor struct {
	UserID domain.UserID
	Role   domain.Role
}

// GetActor retrieves the authenticated actor from the context.
func GetActor(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	return actor, ok
}

// WithActor injects an actor into the context. Exported for handler tests.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// Auth validates the bearer token and places the actor identity in the context.
// Requests without a valid token are rejected with 401.
func Auth(signingKey string, logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	key := []byte(signingKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				rejectUnauthorized(ctx, w, logger, m, "missing bearer token")
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims := &ActorClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return key, nil
			})
			if err != nil || !token.Valid {
				rejectUnauthorized(ctx, w, logger, m, "invalid token")
				return
			}

			userID, err := domain.ParseUserID(claims.UserID)
			if err != nil || userID.IsNil() {
				rejectUnauthorized(ctx, w, logger, m, "invalid user_id claim")
				return
			}
			role := domain.Role(claims.Role)
			if !role.IsValid() {
				rejectUnauthorized(ctx, w, logger, m, "invalid role claim")
				return
			}

			ctx = WithActor(ctx, Actor{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectUnauthorized(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, m *metrics.Metrics, reason string) {
	if logger != nil {
		logger.WarnContext(ctx, "unauthorized request",
			"reason", reason,
			"request_id", GetRequestID(ctx),
		)
	}
	if m != nil {
		m.IncrementAuthFailures()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized"}`))
}
