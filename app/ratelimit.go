package app

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/helo/pkg/ratelimiter"
)

const msgTooManyAttempts = "Muitas tentativas. Tente novamente mais tarde."

// NewLoginLimiter builds a token bucket refilled with LoginRateLimit tokens
// every LoginRateWindow.
func NewLoginLimiter(cfg Config, store ratelimiter.Store) (*ratelimiter.Bucket, error) {
	return ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       cfg.LoginRateLimit,
		RefillRate:     cfg.LoginRateLimit,
		RefillInterval: cfg.LoginRateWindow,
	})
}

// loginThrottled answers in the same shape as a failed login.
func loginThrottled(w http.ResponseWriter, _ *http.Request, _ *ratelimiter.Result) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  false,
		"message": msgTooManyAttempts,
	})
}
