package account

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/helo/pkg/jwt"
	"github.com/dmitrymomot/helo/pkg/logger"
	"github.com/dmitrymomot/helo/pkg/password"
	"github.com/dmitrymomot/helo/pkg/validator"
)

// Service implements the account use cases.
type Service struct {
	storage Storage
	tokens  *jwt.Service
	hasher  password.Hasher
	logger  *slog.Logger
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

// NewService wires the account use cases. Tokens sign session claims on
// login and hasher stores passwords.
func NewService(storage Storage, tokens *jwt.Service, hasher password.Hasher, opts ...ServiceOption) *Service {
	s := &Service{
		storage: storage,
		tokens:  tokens,
		hasher:  hasher,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("account"))
	return s
}

// Register creates a user with a hashed password. Every field must be non-empty.
func (s *Service) Register(ctx context.Context, input NewUser) (*User, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	input.Email = normalizeEmail(input.Email)

	hash, err := s.hasher.Hash(input.Senha)
	if err != nil {
		return nil, err
	}
	input.Senha = hash

	user, err := s.storage.CreateUser(ctx, input)
	if err != nil {
		if !errors.Is(err, ErrEmailAlreadyExists) {
			s.logger.ErrorContext(ctx, "failed to create user", logger.Error(err))
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.UserID(user.ID),
		logger.Event("user_registered"),
	)
	return user, nil
}

// Login verifies the credentials and returns a signed session token.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, senha string) (string, error) {
	if err := validator.Apply(
		validator.RequiredString("email", email),
		validator.RequiredString("senha", senha),
	); err != nil {
		return "", err
	}
	email = normalizeEmail(email)

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		s.logger.ErrorContext(ctx, "failed to load user for login", logger.Error(err))
		return "", err
	}

	if err := s.hasher.Compare(user.Senha, senha); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(SessionClaims{
		ID:               user.ID,
		Email:            user.Email,
		RegisteredClaims: s.tokens.Registered(strconv.FormatInt(user.ID, 10)),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue session token", logger.UserID(user.ID), logger.Error(err))
		return "", fmt.Errorf("issue session token: %w", err)
	}
	return token, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list users", logger.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) ListEmails(ctx context.Context) ([]string, error) {
	emails, err := s.storage.ListEmails(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list emails", logger.Error(err))
		return nil, err
	}
	return emails, nil
}

// Get returns ErrUserNotFound for unknown ids.
func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		s.logger.ErrorContext(ctx, "failed to get user", logger.UserID(id), logger.Error(err))
	}
	return user, err
}

// Update applies patch. A submitted password is stored hashed.
// An empty patch writes nothing and returns the current user.
func (s *Service) Update(ctx context.Context, id int64, patch UserPatch) (*User, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return s.Get(ctx, id)
	}

	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if patch.Senha != nil {
		hash, err := s.hasher.Hash(*patch.Senha)
		if err != nil {
			return nil, err
		}
		patch.Senha = &hash
	}

	user, err := s.storage.UpdateUser(ctx, id, patch)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			s.logger.ErrorContext(ctx, "failed to update user", logger.UserID(id), logger.Error(err))
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user updated", logger.UserID(id), logger.Event("user_updated"))
	return user, nil
}

// Delete removes the user and returns its name.
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	nome, err := s.storage.DeleteUser(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			s.logger.ErrorContext(ctx, "failed to delete user", logger.UserID(id), logger.Error(err))
		}
		return "", err
	}

	s.logger.InfoContext(ctx, "user deleted", logger.UserID(id), logger.Event("user_deleted"))
	return nome, nil
}
