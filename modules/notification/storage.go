package notification

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/helo/pkg/pg"
)

// Storage persists notifications.
type Storage interface {
	// List returns every row ordered by id, never nil.
	List(ctx context.Context) ([]Notification, error)

	// UpdateFirst overwrites the row with the lowest id.
	// It returns ErrNotFound when the table is empty.
	UpdateFirst(ctx context.Context, titulo, corpo string, mostrar bool) (*Notification, error)
}

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const columns = `id, titulo, corpo, mostrar, created_at, updated_at`

// PGStorage implements Storage on PostgreSQL.
type PGStorage struct {
	db DBTX
}

// NewPGStorage returns a Storage backed by db.
func NewPGStorage(db DBTX) *PGStorage {
	return &PGStorage{db: db}
}

func (s *PGStorage) List(ctx context.Context) ([]Notification, error) {
	rows, err := s.db.Query(ctx, `SELECT `+columns+` FROM notificacoes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[Notification])
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	if items == nil {
		items = []Notification{}
	}
	return items, nil
}

func (s *PGStorage) UpdateFirst(ctx context.Context, titulo, corpo string, mostrar bool) (*Notification, error) {
	var n Notification
	err := s.db.QueryRow(ctx,
		`UPDATE notificacoes SET titulo = $1, corpo = $2, mostrar = $3, updated_at = now()
		 WHERE id = (SELECT id FROM notificacoes ORDER BY id LIMIT 1)
		 RETURNING `+columns,
		titulo, corpo, mostrar,
	).Scan(&n.ID, &n.Titulo, &n.Corpo, &n.Mostrar, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update notification: %w", err)
	}
	return &n, nil
}
