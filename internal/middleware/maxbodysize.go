package middleware

import "net/http"

// NewMaxBodySizeHandler returns a middleware that caps request body sizes at
// limit bytes. A request that advertises a larger Content-Length is rejected
// with 413 before any body byte is read; bodies streamed without a declared
// length are wrapped in http.MaxBytesReader so downstream reads fail once the
// limit is crossed.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge),
					http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
