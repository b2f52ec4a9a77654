package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/anonboard-backend/pkg/ctxutil"
)

const maxRequestIDLength = 128

// RequestID propagates X-Request-Id, generating a UUID when the client sent
// none or an oversized one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
