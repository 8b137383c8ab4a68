package repository

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

// PositionRepository defines the interface for position database operations
type PositionRepository interface {
	Repository
	Create(ctx context.Context, position *models.Position) error
	Update(ctx context.Context, position *models.Position) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Position, error)
	GetByName(ctx context.Context, name string) (*models.Position, error)
	List(ctx context.Context) ([]models.Position, error)
}
