package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

type (
	Claims           = gojwt.Claims
	RegisteredClaims = gojwt.RegisteredClaims
	MapClaims        = gojwt.MapClaims
	NumericDate      = gojwt.NumericDate
)

// NewNumericDate converts t to a NumericDate, truncated to seconds.
func NewNumericDate(t time.Time) *NumericDate {
	return gojwt.NewNumericDate(t)
}

// Config is loaded from the environment.
type Config struct {
	Secret string        `env:"JWT_SECRET,required"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`
	Issuer string        `env:"JWT_ISSUER"`
}

// DefaultTTL is used when no lifetime is configured.
const DefaultTTL = time.Hour

// Option configures a Service.
type Option func(*Service)

func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithIssuer(issuer string) Option {
	return func(s *Service) { s.issuer = issuer }
}

// WithTimeFunc overrides the clock used for issuing and validating tokens.
func WithTimeFunc(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service signs and verifies HS256 tokens.
type Service struct {
	signingKey []byte
	ttl        time.Duration
	issuer     string
	now        func() time.Time
}

func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		ttl:        DefaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

func NewFromConfig(cfg Config) (*Service, error) {
	return NewFromString(cfg.Secret, WithTTL(cfg.TTL), WithIssuer(cfg.Issuer))
}

// TTL is the lifetime applied by Registered.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Registered returns registered claims issued now and expiring after the
// service TTL. Subject may be empty.
func (s *Service) Registered(subject string) RegisteredClaims {
	now := s.now()
	return RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  NewNumericDate(now),
		ExpiresAt: NewNumericDate(now.Add(s.ttl)),
	}
}

// Generate signs claims with HS256.
func (s *Service) Generate(claims Claims) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return token, nil
}

// Parse verifies tokenString and decodes it into claims, which must be a pointer
// (or MapClaims).
func (s *Service) Parse(tokenString string, claims Claims) error {
	if tokenString == "" {
		return ErrMissingToken
	}
	if claims == nil {
		return ErrMissingClaims
	}

	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuedAt(),
		gojwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.issuer))
	}

	token, err := gojwt.ParseWithClaims(tokenString, claims, func(*gojwt.Token) (any, error) {
		return s.signingKey, nil
	}, opts...)
	if err != nil {
		return classifyError(err)
	}
	if !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

func classifyError(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenExpired):
		return errors.Join(ErrExpiredToken, err)
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return errors.Join(ErrInvalidSignature, err)
	default:
		return errors.Join(ErrInvalidToken, err)
	}
}
