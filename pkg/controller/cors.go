package controller

import (
	"net/http"
	"strings"
)

var (
	corsMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", ")
	corsHeaders = strings.Join([]string{
		"Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Authorization", RequestIDHeader,
	}, ", ")
)

// WithCORS returns a middleware that allows cross-origin calls from origin
// ("*" allows any) and answers OPTIONS preflight requests with 204 No Content.
func WithCORS(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			if origin != "*" {
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Headers", corsHeaders)
			h.Set("Access-Control-Allow-Methods", corsMethods)
			h.Set("Access-Control-Expose-Headers", RequestIDHeader)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
