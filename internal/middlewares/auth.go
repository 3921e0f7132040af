package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/jwt"
	"github.com/sbilibin2017/gw-social-content/internal/logger"
	"github.com/sbilibin2017/gw-social-content/internal/models"
	"github.com/sbilibin2017/gw-social-content/internal/services"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserFinder resolves a token subject to a live account.
type UserFinder interface {
	FindByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

type actorKey struct{}

// WithActor stores the authenticated actor in ctx.
func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored by AuthMiddleware.
func ActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(models.Actor)
	return actor, ok
}

// AuthMiddleware returns a middleware that validates the bearer token and
// exposes the account it names as the request's actor. Tokens of deleted
// accounts are rejected even before they expire.
func AuthMiddleware(tokener Tokener, users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqID := RequestIDFromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Debugw("authorization failed", "request_id", reqID, "err", err)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Debugw("authorization failed", "request_id", reqID, "err", err)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			user, err := users.FindByID(ctx, claims.UserID)
			if err != nil {
				if services.KindOf(err) == services.KindNotFound {
					logger.Log.Debugw("authorization failed: account is gone", "request_id", reqID, "user_id", claims.UserID)
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				logger.Log.Errorw("failed to resolve actor", "request_id", reqID, "user_id", claims.UserID, "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx = WithActor(ctx, models.Actor{UserID: user.UserID, Username: user.Username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
