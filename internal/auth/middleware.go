package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"detailbook/internal/api"
	"detailbook/pkg/config"
)

type ctxKey string

const ctxKeyAdmin ctxKey = "admin"

func WithAdmin(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKeyAdmin, c)
}

func AdminFromContext(ctx context.Context) *Claims {
	v := ctx.Value(ctxKeyAdmin)
	if v == nil {
		return nil
	}
	c, _ := v.(*Claims)
	return c
}

// AdminOnly guards admin routes with a bearer session token.
//
// Contract:
// - Caller presents `Authorization: Bearer <token>`.
// - A missing header, wrong scheme, or failed verification all produce the
//   same unauthorized response; the reason is never surfaced.
func AdminOnly(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			const scheme = "Bearer "
			if !strings.HasPrefix(header, scheme) {
				api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", ErrInvalidToken.Error())
				return
			}

			raw := strings.TrimSpace(strings.TrimPrefix(header, scheme))
			claims, err := VerifyToken(raw, cfg.JWTSecret, time.Now())
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", ErrInvalidToken.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), claims)))
		})
	}
}
