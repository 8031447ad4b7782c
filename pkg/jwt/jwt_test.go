package jwt_test

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/helo/pkg/jwt"
)

type sessionClaims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func newService(t *testing.T, opts ...jwt.Option) *jwt.Service {
	t.Helper()
	svc, err := jwt.NewFromString("token-secret", opts...)
	require.NoError(t, err)
	return svc
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := jwt.New(nil)
	require.ErrorIs(t, err, jwt.ErrMissingSigningKey)

	_, err = jwt.NewFromString("")
	require.ErrorIs(t, err, jwt.ErrMissingSigningKey)

	svc, err := jwt.NewFromConfig(jwt.Config{Secret: "s", TTL: 2 * time.Hour})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, svc.TTL())

	svc, err = jwt.NewFromConfig(jwt.Config{Secret: "s"})
	require.NoError(t, err)
	assert.Equal(t, jwt.DefaultTTL, svc.TTL())
}

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := newService(t, jwt.WithTimeFunc(func() time.Time { return now }))

	token, err := svc.Generate(sessionClaims{ID: 7, Email: "ana@escola.com", RegisteredClaims: svc.Registered("")})
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	var got sessionClaims
	require.NoError(t, svc.Parse(token, &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "ana@escola.com", got.Email)
	require.NotNil(t, got.ExpiresAt)
	assert.Equal(t, now.Add(time.Hour), got.ExpiresAt.Time.UTC())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	now := time.Now()
	svc := newService(t)

	t.Run("expired", func(t *testing.T) {
		t.Parallel()
		past := newService(t, jwt.WithTimeFunc(func() time.Time { return now.Add(-2 * time.Hour) }))
		token, err := past.Generate(sessionClaims{ID: 1, RegisteredClaims: past.Registered("")})
		require.NoError(t, err)

		var got sessionClaims
		require.ErrorIs(t, svc.Parse(token, &got), jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		other, err := jwt.NewFromString("other-secret")
		require.NoError(t, err)
		token, err := other.Generate(sessionClaims{ID: 1, RegisteredClaims: other.Registered("")})
		require.NoError(t, err)

		var got sessionClaims
		require.ErrorIs(t, svc.Parse(token, &got), jwt.ErrInvalidSignature)
	})

	t.Run("other algorithm rejected", func(t *testing.T) {
		t.Parallel()
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, gojwt.MapClaims{"id": 1}).
			SignedString([]byte("token-secret"))
		require.NoError(t, err)

		require.ErrorIs(t, svc.Parse(token, jwt.MapClaims{}), jwt.ErrInvalidToken)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		t.Parallel()
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"id": 1}).
			SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		require.ErrorIs(t, svc.Parse(token, jwt.MapClaims{}), jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, svc.Parse("not.a.token", jwt.MapClaims{}), jwt.ErrInvalidToken)
		require.ErrorIs(t, svc.Parse("", jwt.MapClaims{}), jwt.ErrMissingToken)
		require.ErrorIs(t, svc.Parse("x", nil), jwt.ErrMissingClaims)
	})

	t.Run("issuer enforced", func(t *testing.T) {
		t.Parallel()
		issuing := newService(t, jwt.WithIssuer("helo"))
		strict := newService(t, jwt.WithIssuer("someone-else"))

		token, err := issuing.Generate(issuing.Registered("7"))
		require.NoError(t, err)

		require.NoError(t, issuing.Parse(token, &jwt.RegisteredClaims{}))
		require.ErrorIs(t, strict.Parse(token, &jwt.RegisteredClaims{}), jwt.ErrInvalidToken)
	})
}

func TestGenerate_NilClaims(t *testing.T) {
	t.Parallel()
	_, err := newService(t).Generate(nil)
	require.ErrorIs(t, err, jwt.ErrMissingClaims)
}
