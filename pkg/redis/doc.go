// Package redis opens go-redis clients from environment configuration.
//
// REDIS_URL is optional: Enabled reports false when it is empty and callers
// fall back to in-process alternatives. Connect parses the URL, pings with
// retries and returns a ready *redis.Client.
package redis
