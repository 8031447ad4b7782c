// Package app assembles the HTTP API: configuration, the chi router with its
// middleware stack, and the login rate limiter.
package app
