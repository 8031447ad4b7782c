// Package ratelimiter implements token-bucket rate limiting.
//
// A Bucket applies a Config (capacity, refill rate, refill interval) to a
// Store. MemoryStore keeps buckets in process; RedisStore keeps them in Redis
// through an atomic Lua script so several API instances share one budget.
// A denied request does not drain the bucket further.
//
// Middleware throttles an http.Handler per key (client IP by default),
// sets X-RateLimit-* headers and Retry-After, and fails open when the store
// errors:
//
//	limiter, _ := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity: 10, RefillRate: 10, RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByIP)).Post("/login", login)
package ratelimiter
