package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/timeseven/ielts-essay-analyzer/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByUsernameOrEmail matches the login identifier against both
	// the username and email columns.
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	SetCurrentClient(ctx context.Context, userID, clientID uuid.UUID) error
}
