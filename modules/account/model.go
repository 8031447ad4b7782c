package account

import (
	"time"

	"github.com/dmitrymomot/helo/pkg/jwt"
	"github.com/dmitrymomot/helo/pkg/sanitizer"
	"github.com/dmitrymomot/helo/pkg/validator"
)

// User is a registered account. The password hash never leaves the service.
type User struct {
	ID         int64     `json:"id" db:"id"`
	Nome       string    `json:"nome" db:"nome"`
	Email      string    `json:"email" db:"email"`
	Senha      string    `json:"-" db:"senha"`
	Disciplina string    `json:"disciplina" db:"disciplina"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// SessionClaims is the payload of the token issued on login.
type SessionClaims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewUser is the registration input.
type NewUser struct {
	Nome       string
	Email      string
	Senha      string
	Disciplina string
}

func (n NewUser) validate() error {
	return validator.Apply(
		validator.RequiredString("nome", n.Nome),
		validator.RequiredString("email", n.Email),
		validator.RequiredString("senha", n.Senha),
		validator.RequiredString("disciplina", n.Disciplina),
	)
}

// UserPatch carries the fields of a partial update. Nil fields are kept.
type UserPatch struct {
	Nome       *string
	Email      *string
	Senha      *string
	Disciplina *string
}

// Validate rejects submitted fields that are empty.
func (p UserPatch) Validate() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"nome", p.Nome},
		{"email", p.Email},
		{"senha", p.Senha},
		{"disciplina", p.Disciplina},
	}

	var rules []validator.Rule
	for _, f := range fields {
		if f.value != nil {
			rules = append(rules, validator.RequiredString(f.name, *f.value))
		}
	}
	return validator.Apply(rules...)
}

// IsEmpty reports whether no field was submitted.
func (p UserPatch) IsEmpty() bool {
	return p.Nome == nil && p.Email == nil && p.Senha == nil && p.Disciplina == nil
}

func normalizeEmail(email string) string {
	return sanitizer.Trim(email)
}
