package repository

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

// BranchRepository defines the interface for branch database operations
type BranchRepository interface {
	Repository
	Create(ctx context.Context, branch *models.Branch) error
	Update(ctx context.Context, branch *models.Branch) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Branch, error)
	GetByName(ctx context.Context, name string) (*models.Branch, error)
	List(ctx context.Context) ([]models.Branch, error)
	Count(ctx context.Context) (int, error)
}
