package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/helo/handler"
	"github.com/dmitrymomot/helo/modules/account"
	"github.com/dmitrymomot/helo/modules/notification"
	"github.com/dmitrymomot/helo/pkg/clientip"
	"github.com/dmitrymomot/helo/pkg/httpserver"
	"github.com/dmitrymomot/helo/pkg/jwt"
	"github.com/dmitrymomot/helo/pkg/ratelimiter"
	"github.com/dmitrymomot/helo/pkg/requestid"
)

// Deps are the services the router exposes.
type Deps struct {
	Logger        *slog.Logger
	Accounts      *account.Service
	Notifications *notification.Service
	Tokens        *jwt.Service

	// LoginLimiter throttles POST /login per client IP. Nil disables it.
	LoginLimiter ratelimiter.RateLimiter

	// Readiness checks served on /health/ready.
	Checks []httpserver.Check
}

type pingResponse struct {
	Pong bool `json:"pong"`
}

func ping(handler.Context, struct{}) handler.Response {
	return handler.JSON(pingResponse{Pong: true})
}

// NewRouter builds the API handler.
func NewRouter(cfg Config, deps Deps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		RequestLogger(log),
	)

	r.Get("/ping", handler.Wrap(ping))
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, deps.Checks...))

	var protected []func(http.Handler) http.Handler
	if cfg.RequireAuth {
		protected = append(protected, jwt.Middleware(deps.Tokens))
	}

	var login []func(http.Handler) http.Handler
	if deps.LoginLimiter != nil {
		login = append(login, ratelimiter.Middleware(deps.LoginLimiter,
			ratelimiter.Prefixed("login", ratelimiter.ByIP),
			ratelimiter.WithDenyHandler(loginThrottled),
			ratelimiter.WithLogger(log),
		))
	}

	account.Routes(r, deps.Accounts, account.RouteOptions{
		Logger:    log,
		Login:       login,
		Protected:   protected,
		MaxBodySize: cfg.MaxBodySize,
	})
	notification.Routes(r, deps.Notifications, notification.RouteOptions{
		Logger:      log,
		Protected:   protected,
		MaxBodySize: cfg.MaxBodySize,
	})

	return r
}
