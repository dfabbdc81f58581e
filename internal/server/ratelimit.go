package server

import (
	"encoding/json"
	"net/http"

	"github.com/dimitrije/recipebox-api/pkg/dto"
	"golang.org/x/time/rate"
)

// rateLimitMiddleware sheds load once the shared token bucket is empty.
func rateLimitMiddleware(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			rateLimitRejects.Inc()
			w.Header().Set("Retry-After", "1")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(dto.MessageResponse{Msg: "Too many requests"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
