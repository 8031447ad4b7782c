package account

import "context"

// Storage persists users.
//
// CreateUser returns ErrEmailAlreadyExists when the email is taken. Lookups,
// UpdateUser and DeleteUser return ErrUserNotFound for unknown ids. List
// methods return users ordered by id and never nil.
type Storage interface {
	CreateUser(ctx context.Context, user NewUser) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	ListEmails(ctx context.Context) ([]string, error)
	UpdateUser(ctx context.Context, id int64, patch UserPatch) (*User, error)
	DeleteUser(ctx context.Context, id int64) (nome string, err error)
}
