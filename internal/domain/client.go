package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is the tenant boundary: a user may belong to several clients,
// but every token is scoped to exactly one.
type Client struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
