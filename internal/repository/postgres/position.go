package postgres

import (
	"context"
	"database/sql"
	"strings"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/google/uuid"
)

type positionRepository struct {
	repository.BaseRepository
}

// NewPositionRepository creates a postgres-backed position repository
func NewPositionRepository(db *sql.DB) repository.PositionRepository {
	return &positionRepository{BaseRepository: repository.NewBaseRepository(db)}
}

func scanPosition(row interface{ Scan(...interface{}) error }) (*models.Position, error) {
	position := &models.Position{}
	err := row.Scan(
		&position.ID,
		&position.Name,
		&position.Description,
		&position.Status,
		&position.CreatedAt,
		&position.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrPositionNotFound
	}
	if err != nil {
		return nil, err
	}
	return position, nil
}

func (r *positionRepository) Create(ctx context.Context, position *models.Position) error {
	query := `
		INSERT INTO positions (name, description, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.DB().QueryRowContext(
		ctx,
		query,
		position.Name,
		position.Description,
		position.Status,
	).Scan(&position.ID, &position.CreatedAt, &position.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return repository.ErrPositionExists
	}
	return err
}

func (r *positionRepository) Update(ctx context.Context, position *models.Position) error {
	query := `
		UPDATE positions
		SET name = $1, description = $2, status = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at`

	err := r.DB().QueryRowContext(
		ctx,
		query,
		position.Name,
		position.Description,
		position.Status,
		position.ID,
	).Scan(&position.UpdatedAt)
	if err == sql.ErrNoRows {
		return repository.ErrPositionNotFound
	}
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return repository.ErrPositionExists
	}
	return err
}

func (r *positionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var count int
	err := r.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM employees WHERE position_id = $1 AND deleted_at IS NULL", id).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return repository.ErrHasAssociatedRecords
	}

	result, err := r.DB().ExecContext(ctx, "DELETE FROM positions WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrPositionNotFound
	}
	return nil
}

func (r *positionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Position, error) {
	query := `
		SELECT id, name, description, status, created_at, updated_at
		FROM positions
		WHERE id = $1`
	return scanPosition(r.DB().QueryRowContext(ctx, query, id))
}

func (r *positionRepository) GetByName(ctx context.Context, name string) (*models.Position, error) {
	query := `
		SELECT id, name, description, status, created_at, updated_at
		FROM positions
		WHERE name = $1`
	return scanPosition(r.DB().QueryRowContext(ctx, query, name))
}

func (r *positionRepository) List(ctx context.Context) ([]models.Position, error) {
	query := `
		SELECT id, name, description, status, created_at, updated_at
		FROM positions
		ORDER BY name`

	rows, err := r.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []models.Position
	for rows.Next() {
		position, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, *position)
	}
	return positions, rows.Err()
}
