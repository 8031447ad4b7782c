package notification

import "time"

type Notification struct {
	ID        int64     `json:"id" db:"id"`
	Titulo    string    `json:"titulo" db:"titulo"`
	Corpo     string    `json:"corpo" db:"corpo"`
	Mostrar   bool      `json:"mostrar" db:"mostrar"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Update replaces every field of the notification.
type Update struct {
	Titulo  string
	Corpo   string
	Mostrar *bool
}
