package account

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/helo/handler"
	"github.com/dmitrymomot/helo/pkg/binder"
)

// RouteOptions configures the middleware around account routes.
type RouteOptions struct {
	Logger *slog.Logger

	// Login wraps POST /login, e.g. a rate limiter.
	Login []func(http.Handler) http.Handler

	// Protected wraps user management routes, e.g. bearer token auth.
	// Registration and login are never protected.
	Protected []func(http.Handler) http.Handler

	// MaxBodySize caps JSON bodies. Zero keeps binder.DefaultMaxJSONSize.
	MaxBodySize int64
}

// bindingErrorBody renders body for client errors and a generic message otherwise.
func bindingErrorBody(body any, internal any) handler.ErrorRenderer {
	return func(info handler.ErrorInfo) any {
		if info.StatusCode >= http.StatusInternalServerError {
			return internal
		}
		return body
	}
}

// Routes mounts the account endpoints on r:
//
//	POST   /usuarios
//	POST   /login
//	GET    /usuarios
//	GET    /usuarios/emails
//	GET    /usuarios/{id}
//	PUT    /usuarios/{id}
//	DELETE /usuarios/{id}
func Routes(r chi.Router, svc *Service, opts RouteOptions) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	h := &httpHandler{svc: svc}
	errorHandler := handler.NewErrorHandler(log, nil)
	bindJSON := binder.JSON(binder.AllowUnknownFields(), binder.WithMaxSize(opts.MaxBodySize))

	r.Post("/usuarios", handler.Wrap(h.register,
		handler.WithBinders[handler.Context, registerRequest](bindJSON),
		handler.WithErrorHandler[handler.Context, registerRequest](handler.NewErrorHandler(log,
			bindingErrorBody(errorBody{Error: msgRegisterIncomplete}, errorBody{Error: msgInternal}),
		)),
	))

	r.With(opts.Login...).Post("/login", handler.Wrap(h.login,
		handler.WithBinders[handler.Context, loginRequest](bindJSON),
		handler.WithErrorHandler[handler.Context, loginRequest](handler.NewErrorHandler(log,
			bindingErrorBody(loginResult{Message: msgLoginIncomplete}, loginResult{Message: msgInternal}),
		)),
	))

	r.Group(func(r chi.Router) {
		r.Use(opts.Protected...)

		r.Get("/usuarios", handler.Wrap(h.list,
			handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
		))
		r.Get("/usuarios/emails", handler.Wrap(h.listEmails,
			handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
		))
		r.Get("/usuarios/{id}", handler.Wrap(h.get,
			handler.WithBinders[handler.Context, userIDRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, userIDRequest](errorHandler),
		))
		r.Put("/usuarios/{id}", handler.Wrap(h.update,
			handler.WithBinders[handler.Context, updateUserRequest](
				bindJSON,
				binder.Path(chi.URLParam),
			),
			handler.WithErrorHandler[handler.Context, updateUserRequest](handler.NewErrorHandler(log,
				bindingErrorBody(
					updateUserResponse{Mensagem: msgUpdateIncomplete, Status: status(http.StatusBadRequest)},
					updateUserResponse{Mensagem: msgUpdateFailed, Status: status(http.StatusInternalServerError)},
				),
			)),
		))
		r.Delete("/usuarios/{id}", handler.Wrap(h.delete,
			handler.WithBinders[handler.Context, userIDRequest](binder.Path(chi.URLParam)),
			handler.WithErrorHandler[handler.Context, userIDRequest](errorHandler),
		))
	})
}
