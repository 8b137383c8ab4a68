package repository

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

// EmployeeRepository defines the interface for employee database operations
type EmployeeRepository interface {
	Repository
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	ForceDelete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetByRFID(ctx context.Context, rfid string) (*models.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]models.Employee, error)
	Count(ctx context.Context) (int, error)
}

// EmployeeFilter defines the filter options for listing employees
type EmployeeFilter struct {
	Search     *string // Search by name, employee number or email
	PositionID *uuid.UUID
	BranchID   *uuid.UUID
	Status     *string
	OrderBy    string
	OrderDesc  bool
	Limit      *int
	Offset     *int
}
