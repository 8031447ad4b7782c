package validator

// NotNil validates that an optional value was supplied.
func NotNil[T any](field string, value *T) Rule {
	return Rule{
		Check: func() bool {
			return value != nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Truthy validates that a boolean was supplied and is true.
// A supplied false fails exactly like a missing value.
func Truthy(field string, value *bool) Rule {
	return Rule{
		Check: func() bool {
			return value != nil && *value
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
