package notification

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/helo/handler"
	"github.com/dmitrymomot/helo/pkg/binder"
	"github.com/dmitrymomot/helo/pkg/validator"
)

const (
	msgUpdated       = "Notificação atualizada com sucesso."
	msgNotFound      = "Notificação não encontrada."
	msgInvalidFields = "Campos inválidos."
	msgInternal      = "Erro interno no servidor."
)

type errorBody struct {
	Error string `json:"error"`
}

type listResponse struct {
	Notificacao []Notification `json:"notificacao"`
}

type updateRequest struct {
	Titulo string `json:"titulo"`
	Corpo  string `json:"corpo"`

	// Only JSON booleans bind. "true" or 1 fail decoding and answer 400.
	Mostrar *bool `json:"mostrar"`
}

type updateResponse struct {
	Message     string        `json:"message"`
	Notificacao *Notification `json:"notificacao"`
}

type httpHandler struct {
	svc *Service
}

func (h *httpHandler) show(ctx handler.Context, _ struct{}) handler.Response {
	items, err := h.svc.List(ctx)
	if err != nil {
		return handler.JSON(errorBody{Error: msgInternal}, handler.WithJSONStatus(http.StatusInternalServerError))
	}
	return handler.JSON(listResponse{Notificacao: items})
}

func (h *httpHandler) update(ctx handler.Context, req updateRequest) handler.Response {
	n, err := h.svc.Update(ctx, Update(req))
	switch {
	case err == nil:
		return handler.JSON(updateResponse{Message: msgUpdated, Notificacao: n})
	case validator.IsValidationError(err):
		return handler.JSON(errorBody{Error: msgInvalidFields}, handler.WithJSONStatus(http.StatusBadRequest))
	case errors.Is(err, ErrNotFound):
		return handler.JSON(errorBody{Error: msgNotFound}, handler.WithJSONStatus(http.StatusNotFound))
	default:
		return handler.JSON(errorBody{Error: msgInternal}, handler.WithJSONStatus(http.StatusInternalServerError))
	}
}

// RouteOptions configures the middleware around notification routes.
type RouteOptions struct {
	Logger *slog.Logger

	// Protected wraps PUT /notificacao.
	Protected []func(http.Handler) http.Handler

	// MaxBodySize caps JSON bodies. Zero keeps binder.DefaultMaxJSONSize.
	MaxBodySize int64
}

// Routes mounts GET and PUT /notificacao on r.
func Routes(r chi.Router, svc *Service, opts RouteOptions) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	h := &httpHandler{svc: svc}

	r.Get("/notificacao", handler.Wrap(h.show,
		handler.WithErrorHandler[handler.Context, struct{}](handler.NewErrorHandler(log, nil)),
	))

	r.With(opts.Protected...).Put("/notificacao", handler.Wrap(h.update,
		handler.WithBinders[handler.Context, updateRequest](binder.JSON(binder.AllowUnknownFields(), binder.WithMaxSize(opts.MaxBodySize))),
		handler.WithErrorHandler[handler.Context, updateRequest](handler.NewErrorHandler(log,
			func(info handler.ErrorInfo) any {
				if info.StatusCode >= http.StatusInternalServerError {
					return errorBody{Error: msgInternal}
				}
				return errorBody{Error: msgInvalidFields}
			},
		)),
	))
}
