package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/timeseven/ielts-essay-analyzer/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	// GetByClientAndUser is the read contract the identity stage
	// depends on: the profile for the composite (client, user) key.
	GetByClientAndUser(ctx context.Context, clientID, userID uuid.UUID) (*domain.Profile, error)
	// TouchLogin marks the profile active and records the login time,
	// returning the updated row.
	TouchLogin(ctx context.Context, clientID, userID uuid.UUID) (*domain.Profile, error)
}
