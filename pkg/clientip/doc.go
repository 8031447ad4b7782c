// Package clientip resolves the originating client address of a request.
//
// GetIP checks the proxy headers in order (CF-Connecting-IP, X-Forwarded-For,
// X-Real-IP) and falls back to RemoteAddr. Every candidate is parsed with
// net.ParseIP, so spoofed garbage is skipped rather than returned.
// Middleware stores the result in the request context for later handlers
// such as the login throttle and the access log.
package clientip
