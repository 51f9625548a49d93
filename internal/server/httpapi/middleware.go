package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/tajaa/matcha-recruit-sub001/internal/server/auth"
)

type ctxKey int

const employerIDKey ctxKey = iota

// EmployerIDFromContext returns the employer id placed there by the auth
// middleware. The empty string means the request was not authenticated.
func EmployerIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(employerIDKey).(string)
	return id
}

// requireEmployer verifies the Bearer JWT and stores the employer id in
// the request context.
func (a *API) requireEmployer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token", nil)
			return
		}

		employerID, err := auth.GetEmployerIDFromToken(token, a.secretKey)
		if err != nil {
			WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token", nil)
			return
		}

		ctx := context.WithValue(r.Context(), employerIDKey, employerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
