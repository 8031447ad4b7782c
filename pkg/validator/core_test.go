package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/helo/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "senha", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required; senha: is required", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "nome", Message: "a"})
	errs.Add(validator.ValidationError{Field: "nome", Message: "b"})
	errs.Add(validator.ValidationError{Field: "email", Message: "c"})

	assert.True(t, errs.Has("nome"))
	assert.False(t, errs.Has("senha"))
	assert.Equal(t, []string{"a", "b"}, errs.Get("nome"))
	assert.Equal(t, []string{"nome", "email"}, errs.Fields())
	assert.Equal(t, map[string][]string{"nome": {"a", "b"}, "email": {"c"}}, errs.Details())
	assert.Nil(t, validator.ValidationErrors{}.Details())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("nome", "Ana"),
			validator.RequiredString("email", " "),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("nome", ""),
			validator.RequiredString("email", ""),
			validator.RequiredString("disciplina", "História"),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"nome", "email"}, errs.Fields())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))

	wrapped := fmt.Errorf("register: %w", validator.Apply(validator.RequiredString("nome", "")))
	assert.True(t, validator.IsValidationError(wrapped))
	assert.True(t, validator.ExtractValidationErrors(wrapped).Has("nome"))
	assert.False(t, validator.IsValidationError(nil))
}
