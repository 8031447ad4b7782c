package ratelimiter

import (
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/helo/pkg/clientip"
	"github.com/dmitrymomot/helo/pkg/logger"
)

const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// ByIP keys requests by client address.
func ByIP(r *http.Request) string {
	return clientip.FromRequest(r)
}

// Prefixed namespaces keys from fn, e.g. per route.
func Prefixed(prefix string, fn KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		if key := fn(r); key != "" {
			return prefix + ":" + key
		}
		return ""
	}
}

// Composite joins the non-empty keys. Results longer than 64 bytes are
// hashed with FNV-1a.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}

		h := fnv.New64a()
		h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// DenyHandler writes the response for a throttled request. Rate limit
// headers are already set.
type DenyHandler func(w http.ResponseWriter, r *http.Request, result *Result)

type middlewareConfig struct {
	deny DenyHandler
	log  *slog.Logger
}

type MiddlewareOption func(*middlewareConfig)

func WithDenyHandler(h DenyHandler) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.deny = h
		}
	}
}

func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.log = l
		}
	}
}

func defaultDeny(w http.ResponseWriter, _ *http.Request, _ *Result) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "too_many_requests"})
}

// Middleware throttles requests per key. Requests with an empty key and
// requests hitting a store error pass through.
func Middleware(limiter RateLimiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{deny: defaultDeny, log: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if keyFunc == nil {
		keyFunc = ByIP
	}
	log := cfg.log.With(logger.Component("ratelimiter"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			result, err := limiter.Allow(r.Context(), key)
			if err != nil {
				log.ErrorContext(r.Context(), "rate limit check failed, allowing request",
					logger.Error(err),
					slog.String("key", key),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				// round up so clients never retry early
				retryAfter := int(math.Ceil(result.RetryAfter().Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
				log.WarnContext(r.Context(), "request throttled",
					logger.Event("rate_limited"),
					slog.String("key", key),
					slog.String("path", r.URL.Path),
				)
				cfg.deny(w, r, result)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
