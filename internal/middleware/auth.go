package middleware

import (
	"context"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/skillswap/backend/repository"
	authUC "github.com/skillswap/backend/usecase/auth"
)

// SessionAuth resolves the bearer token through the session store and
// forwards the authenticated user's ID via the X-User-ID header.
func SessionAuth(auth *authUC.UseCase, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			token := extractToken(ctx)
			if token == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			user, err := auth.Authenticate(context.Background(), token)
			if err != nil {
				logger.Warn("invalid session token", zap.Error(err))
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			ctx.Request.Header.Set("X-User-ID", user.ID)
			next(ctx)
		}
	}
}

// OptionalSession forwards the user's ID when a valid token is present but
// lets anonymous requests through. Used by the public directory routes.
func OptionalSession(auth *authUC.UseCase, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			// Never trust a caller-supplied identity header.
			ctx.Request.Header.Del("X-User-ID")

			if token := extractToken(ctx); token != "" {
				if user, err := auth.Authenticate(context.Background(), token); err == nil {
					ctx.Request.Header.Set("X-User-ID", user.ID)
				}
			}
			next(ctx)
		}
	}
}

// RequireAdmin rejects requests whose authenticated user is not an admin.
// It must run after SessionAuth.
func RequireAdmin(users repository.UserRepository, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			userID := string(ctx.Request.Header.Peek("X-User-ID"))
			if userID == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(context.Background(), userID)
			if err != nil || !user.IsAdmin {
				logger.Warn("admin route denied", zap.String("user_id", userID))
				ctx.SetStatusCode(fasthttp.StatusForbidden)
				return
			}
			next(ctx)
		}
	}
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
