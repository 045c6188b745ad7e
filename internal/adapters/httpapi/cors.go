package httpapi

import "net/http"

// NewCORSMiddleware answers preflight requests and stamps CORS headers for
// the configured browser origin. An empty allowedOrigin disables CORS
// entirely, which is the right default when a reverse proxy owns it.
func NewCORSMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if allowedOrigin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")

			origin := r.Header.Get("Origin")
			if origin == allowedOrigin || allowedOrigin == "*" {
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
				if allowedOrigin != "*" {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
				h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type, X-Requester-Id, X-Delete-Secret")
				h.Set("Access-Control-Max-Age", "600")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
