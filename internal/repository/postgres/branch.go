package postgres

import (
	"context"
	"database/sql"
	"strings"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/google/uuid"
)

type branchRepository struct {
	repository.BaseRepository
}

// NewBranchRepository creates a postgres-backed branch repository
func NewBranchRepository(db *sql.DB) repository.BranchRepository {
	return &branchRepository{BaseRepository: repository.NewBaseRepository(db)}
}

const branchColumns = `b.id, b.name, b.manager_id, b.contact, b.status, b.created_at, b.updated_at,
	       m.first_name, m.last_name`

func scanBranch(row interface{ Scan(...interface{}) error }) (*models.Branch, error) {
	branch := &models.Branch{}
	var managerFirst, managerLast *string
	err := row.Scan(
		&branch.ID,
		&branch.Name,
		&branch.ManagerID,
		&branch.Contact,
		&branch.Status,
		&branch.CreatedAt,
		&branch.UpdatedAt,
		&managerFirst,
		&managerLast,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrBranchNotFound
	}
	if err != nil {
		return nil, err
	}
	if branch.ManagerID != nil && managerFirst != nil && managerLast != nil {
		branch.Manager = &models.Employee{
			ID:        *branch.ManagerID,
			FirstName: *managerFirst,
			LastName:  *managerLast,
		}
	}
	return branch, nil
}

const branchJoin = ` FROM branches b
		LEFT JOIN employees m ON b.manager_id = m.id`

func (r *branchRepository) Create(ctx context.Context, branch *models.Branch) error {
	query := `
		INSERT INTO branches (name, manager_id, contact, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.DB().QueryRowContext(
		ctx,
		query,
		branch.Name,
		branch.ManagerID,
		branch.Contact,
		branch.Status,
	).Scan(&branch.ID, &branch.CreatedAt, &branch.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return repository.ErrBranchExists
	}
	return err
}

func (r *branchRepository) Update(ctx context.Context, branch *models.Branch) error {
	query := `
		UPDATE branches
		SET name = $1, manager_id = $2, contact = $3, status = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING updated_at`

	err := r.DB().QueryRowContext(
		ctx,
		query,
		branch.Name,
		branch.ManagerID,
		branch.Contact,
		branch.Status,
		branch.ID,
	).Scan(&branch.UpdatedAt)
	if err == sql.ErrNoRows {
		return repository.ErrBranchNotFound
	}
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return repository.ErrBranchExists
	}
	return err
}

func (r *branchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Refuse to delete a branch that still has employees
	var count int
	err := r.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM employees WHERE branch_id = $1 AND deleted_at IS NULL", id).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return repository.ErrHasAssociatedRecords
	}

	result, err := r.DB().ExecContext(ctx, "DELETE FROM branches WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrBranchNotFound
	}
	return nil
}

func (r *branchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Branch, error) {
	query := "SELECT " + branchColumns + branchJoin + " WHERE b.id = $1"
	return scanBranch(r.DB().QueryRowContext(ctx, query, id))
}

func (r *branchRepository) GetByName(ctx context.Context, name string) (*models.Branch, error) {
	query := "SELECT " + branchColumns + branchJoin + " WHERE b.name = $1"
	return scanBranch(r.DB().QueryRowContext(ctx, query, name))
}

func (r *branchRepository) List(ctx context.Context) ([]models.Branch, error) {
	query := "SELECT " + branchColumns + branchJoin + " ORDER BY b.name"
	rows, err := r.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []models.Branch
	for rows.Next() {
		branch, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		branches = append(branches, *branch)
	}
	return branches, rows.Err()
}

func (r *branchRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM branches").Scan(&count)
	return count, err
}
