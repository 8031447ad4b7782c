package password

import "errors"

var (
	ErrMismatch    = errors.New("password does not match")
	ErrInvalidCost = errors.New("invalid bcrypt cost")
)
