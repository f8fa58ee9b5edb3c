// ABOUTME: Panic recovery middleware for HTTP handlers
// ABOUTME: Converts handler panics into JSON 500 responses and logs them

package middleware

import (
	"log/slog"
	"net/http"
)

// Recover turns a panic in next into a 500 response.
func Recover(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("Handler panic", "path", sanitizePath(r.URL.Path), "panic", rec)
				WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next(w, r)
	}
}
