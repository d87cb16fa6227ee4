package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/sebacontegrand/recetasjanet/internal/auth"
	"github.com/sebacontegrand/recetasjanet/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (subject string, role string, err error)
}

// AdminAuth rejects requests without a valid admin bearer token.
// Missing or invalid tokens get 401, a valid token with another role 403.
// The admin subject is stored in the request context.
func AdminAuth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			subject, role, err := validator.ValidateToken(token)
			if err != nil {
				logger.DebugContext(r.Context(), "admin token rejected", slog.String("error", err.Error()))
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if role != auth.RoleAdmin {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			recordSubject(r.Context(), subject)
			ctx := ctxutil.WithAdminSubject(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
