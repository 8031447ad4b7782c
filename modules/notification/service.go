package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/helo/pkg/logger"
	"github.com/dmitrymomot/helo/pkg/validator"
)

// Service implements the notification use cases.
type Service struct {
	storage   Storage
	allowHide bool
	logger    *slog.Logger
}

type ServiceOption func(*Service)

// WithLogger sets the service logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAllowHide accepts "mostrar": false in updates.
func WithAllowHide(allow bool) ServiceOption {
	return func(s *Service) { s.allowHide = allow }
}

// NewService returns a Service over storage.
func NewService(storage Storage, opts ...ServiceOption) *Service {
	s := &Service{
		storage: storage,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("notification"))
	return s
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	items, err := s.storage.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list notifications", logger.Error(err))
		return nil, err
	}
	return items, nil
}

// Update overwrites the first notification.
func (s *Service) Update(ctx context.Context, in Update) (*Notification, error) {
	mostrarRule := validator.Truthy("mostrar", in.Mostrar)
	if s.allowHide {
		mostrarRule = validator.NotNil("mostrar", in.Mostrar)
	}
	if err := validator.Apply(
		validator.RequiredString("titulo", in.Titulo),
		validator.RequiredString("corpo", in.Corpo),
		mostrarRule,
	); err != nil {
		return nil, err
	}

	n, err := s.storage.UpdateFirst(ctx, in.Titulo, in.Corpo, *in.Mostrar)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to update notification", logger.Error(err))
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "notification updated",
		slog.Int64("notification_id", n.ID),
		logger.Event("notification_updated"),
	)
	return n, nil
}
