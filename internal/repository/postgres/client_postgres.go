package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/timeseven/ielts-essay-analyzer/internal/domain"
	"github.com/timeseven/ielts-essay-analyzer/internal/repository"
)

type clientRepository struct {
	db *sqlx.DB
}

// NewClientRepository creates a PostgreSQL client repository.
func NewClientRepository(db *sqlx.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, name, created_at, updated_at)
		VALUES (:id, :name, now(), now())`

	if _, err := r.db.NamedExecContext(ctx, query, client); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM clients
		WHERE id = $1`

	var client domain.Client
	if err := r.db.GetContext(ctx, &client, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &client, nil
}
