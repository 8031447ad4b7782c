package jwt

import (
	"context"
	"encoding/json"
	"fmt"
)

type contextKey struct{ name string }

var (
	tokenContextKey  = &contextKey{name: "jwt"}
	claimsContextKey = &contextKey{name: "jwt_claims"}
)

func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

func SetClaims(ctx context.Context, claims any) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetClaims returns the stored claims if they have type T.
func GetClaims[T any](ctx context.Context) (T, bool) {
	claims, ok := ctx.Value(claimsContextKey).(T)
	return claims, ok
}

// GetClaimsAs decodes the stored claims into dst. The middleware stores
// MapClaims, so typed access goes through a JSON round trip.
func GetClaimsAs[T any](ctx context.Context, dst *T) error {
	if dst == nil {
		return ErrInvalidClaims
	}

	v := ctx.Value(claimsContextKey)
	if v == nil {
		return ErrInvalidClaims
	}
	if typed, ok := v.(T); ok {
		*dst = typed
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidClaims, err)
	}
	return nil
}
