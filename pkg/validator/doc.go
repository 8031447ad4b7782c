// Package validator provides small, composable validation rules.
//
// A Rule pairs a check with the ValidationError reported when the check fails.
// Apply evaluates a list of rules and returns ValidationErrors (or nil):
//
//	err := validator.Apply(
//		validator.RequiredString("email", req.Email),
//		validator.RequiredString("senha", req.Senha),
//		validator.NotNil("mostrar", req.Mostrar),
//	)
//	if validator.IsValidationError(err) {
//		// 400
//	}
//
// Every error carries a translation key and values so that callers can render
// localized messages.
package validator
