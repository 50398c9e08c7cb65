package middleware

import (
	"net/http"
	"strings"
)

// The dashboard API is read-only, so the browser only ever needs GET plus
// its preflight.
var corsHeaders = strings.Join([]string{
	"Authorization", "Content-Type", "X-User-Id", "X-Locale",
}, ", ")

// CORS answers cross-origin requests from the dashboard frontend. Origins
// not on the allow list get no CORS headers at all, and their preflights
// are refused.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allow := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allow[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			_, ok := allow[origin]
			if ok {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				h.Set("Access-Control-Allow-Headers", corsHeaders)
				h.Set("Access-Control-Max-Age", "300")
			}

			if r.Method == http.MethodOptions {
				if ok {
					w.WriteHeader(http.StatusNoContent)
				} else {
					w.WriteHeader(http.StatusForbidden)
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
