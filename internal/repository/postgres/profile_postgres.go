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

type profileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a PostgreSQL profile repository.
func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (client_id, user_id, is_client_owner, full_name, avatar_url, status, created_at, updated_at)
		VALUES (:client_id, :user_id, :is_client_owner, :full_name, :avatar_url, :status, now(), now())`

	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *profileRepository) GetByClientAndUser(ctx context.Context, clientID, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT client_id, user_id, is_client_owner, full_name, avatar_url,
		       status, last_login_at, created_at, updated_at
		FROM profiles
		WHERE client_id = $1 AND user_id = $2`

	var profile domain.Profile
	if err := r.db.GetContext(ctx, &profile, query, clientID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

func (r *profileRepository) TouchLogin(ctx context.Context, clientID, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		UPDATE profiles
		SET status = 'active', last_login_at = now(), updated_at = now()
		WHERE client_id = $1 AND user_id = $2
		RETURNING client_id, user_id, is_client_owner, full_name, avatar_url,
		          status, last_login_at, created_at, updated_at`

	var profile domain.Profile
	if err := r.db.GetContext(ctx, &profile, query, clientID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile login: %w", err)
	}

	return &profile, nil
}
