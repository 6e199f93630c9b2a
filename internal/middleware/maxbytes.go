package middleware

import (
	"net/http"
)

// DefaultMaxBodyBytes caps request bodies at 64 KiB. The only bodies this API
// accepts are register/login credential payloads, which are tiny.
const DefaultMaxBodyBytes = 64 << 10

// MaxBytes limits the request body size. Oversized bodies fail the handler's
// JSON decode and surface as a 400. Apply to routes that accept a body.
func MaxBytes(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
