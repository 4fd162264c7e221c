package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/timeseven/ielts-essay-analyzer/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}
