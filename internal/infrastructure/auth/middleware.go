package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/honeynil/coffee-token-inspector/internal/models"
)

type contextKey struct{}

type Inspector interface {
	InspectAuthorization(ctx context.Context, headerValue string) (*models.Inspection, error)
}

// ClaimsMiddleware decodes the bearer token of every request and stores the
// inspection in the request context. The signature is not checked.
func ClaimsMiddleware(inspector Inspector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inspection, err := inspector.InspectAuthorization(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				slog.Warn("rejected request token", "path", r.URL.Path, "error", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
				return
			}

			ctx := context.WithValue(r.Context(), contextKey{}, inspection)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func InspectionFromContext(ctx context.Context) (*models.Inspection, bool) {
	inspection, ok := ctx.Value(contextKey{}).(*models.Inspection)
	return inspection, ok
}
