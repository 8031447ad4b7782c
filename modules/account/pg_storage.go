package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/helo/pkg/pg"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const userColumns = `id, nome, email, senha, disciplina, created_at, updated_at`

// PGStorage implements Storage on PostgreSQL.
type PGStorage struct {
	db DBTX
}

// NewPGStorage returns a Storage backed by db.
func NewPGStorage(db DBTX) *PGStorage {
	return &PGStorage{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.Senha, &u.Disciplina, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts the user unless the email is taken. The conflict check
// and the insert are one statement.
func (s *PGStorage) CreateUser(ctx context.Context, user NewUser) (*User, error) {
	u, err := scanUser(s.db.QueryRow(ctx,
		`INSERT INTO usuarios (nome, email, senha, disciplina)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING `+userColumns,
		user.Nome, user.Email, user.Senha, user.Disciplina,
	))
	switch {
	case err == nil:
		return u, nil
	case pg.IsNotFoundError(err), pg.IsDuplicateKeyError(err):
		return nil, ErrEmailAlreadyExists
	default:
		return nil, fmt.Errorf("create user: %w", err)
	}
}

func (s *PGStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE email = $1`, email,
	))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *PGStorage) GetUserByID(ctx context.Context, id int64) (*User, error) {
	u, err := scanUser(s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id,
	))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

func (s *PGStorage) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.Query(ctx, `SELECT `+userColumns+` FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[User])
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}

func (s *PGStorage) ListEmails(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT email FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	emails, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	if emails == nil {
		emails = []string{}
	}
	return emails, nil
}

// UpdateUser overwrites the submitted fields. An email taken by another user
// surfaces as a wrapped unique violation.
func (s *PGStorage) UpdateUser(ctx context.Context, id int64, patch UserPatch) (*User, error) {
	u, err := scanUser(s.db.QueryRow(ctx,
		`UPDATE usuarios SET
			nome = COALESCE($2, nome),
			email = COALESCE($3, email),
			senha = COALESCE($4, senha),
			disciplina = COALESCE($5, disciplina),
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, patch.Nome, patch.Email, patch.Senha, patch.Disciplina,
	))
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (s *PGStorage) DeleteUser(ctx context.Context, id int64) (string, error) {
	var nome string
	err := s.db.QueryRow(ctx, `DELETE FROM usuarios WHERE id = $1 RETURNING nome`, id).Scan(&nome)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("delete user: %w", err)
	}
	return nome, nil
}
