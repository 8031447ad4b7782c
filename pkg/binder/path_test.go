package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/helo/pkg/binder"
)

func staticParams(params map[string]string) func(*http.Request, string) string {
	return func(_ *http.Request, name string) string {
		return params[name]
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	type request struct {
		ID     string `path:"id"`
		Num    int64  `path:"num"`
		Opt    *uint  `path:"opt"`
		Flag   bool   `path:"flag"`
		Ignore string
		Skip   string `path:"-"`
	}

	t.Run("binds tagged fields", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		var got request
		err := binder.Path(staticParams(map[string]string{
			"id": "abc", "num": "42", "opt": "7", "flag": "true", "Ignore": "x", "-": "y",
		}))(req, &got)
		require.NoError(t, err)

		assert.Equal(t, "abc", got.ID)
		assert.Equal(t, int64(42), got.Num)
		require.NotNil(t, got.Opt)
		assert.Equal(t, uint(7), *got.Opt)
		assert.True(t, got.Flag)
		assert.Empty(t, got.Ignore)
		assert.Empty(t, got.Skip)
	})

	t.Run("missing params keep zero values", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		var got request
		require.NoError(t, binder.Path(staticParams(nil))(req, &got))
		assert.Nil(t, got.Opt)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		var got request
		err := binder.Path(staticParams(map[string]string{"num": "abc"}))(req, &got)
		require.ErrorIs(t, err, binder.ErrInvalidPath)
	})

	t.Run("nil extractor", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		var got request
		require.ErrorIs(t, binder.Path(nil)(req, &got), binder.ErrInvalidPath)
	})

	t.Run("non struct target", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		var s string
		require.ErrorIs(t, binder.Path(staticParams(nil))(req, &s), binder.ErrInvalidPath)
	})
}
