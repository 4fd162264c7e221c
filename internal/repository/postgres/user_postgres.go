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

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a PostgreSQL user repository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, email, hashed_password, is_admin, created_at, updated_at)
		VALUES (:id, :username, :email, :hashed_password, :is_admin, now(), now())`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	query := `
		SELECT id, username, email, hashed_password, is_admin,
		       current_client_id, created_at, updated_at
		FROM users
		WHERE username = $1 OR email = $1`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, identifier); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) SetCurrentClient(ctx context.Context, userID, clientID uuid.UUID) error {
	query := `
		UPDATE users
		SET current_client_id = $1, updated_at = now()
		WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, clientID, userID); err != nil {
		return fmt.Errorf("failed to set current client: %w", err)
	}

	return nil
}
