package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/google/uuid"
)

type leaveRepository struct {
	repository.BaseRepository
}

// NewLeaveRepository creates a postgres-backed leave repository
func NewLeaveRepository(db *sql.DB) repository.LeaveRepository {
	return &leaveRepository{BaseRepository: repository.NewBaseRepository(db)}
}

func scanLeave(row interface{ Scan(...interface{}) error }) (*models.Leave, error) {
	leave := &models.Leave{}
	var firstName, lastName *string
	err := row.Scan(
		&leave.ID,
		&leave.EmployeeID,
		&leave.LeaveType,
		&leave.StartDate,
		&leave.EndDate,
		&leave.Status,
		&leave.Reason,
		&leave.ReviewedBy,
		&leave.ReviewedAt,
		&leave.CreatedAt,
		&leave.UpdatedAt,
		&firstName,
		&lastName,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrLeaveNotFound
	}
	if err != nil {
		return nil, err
	}
	if firstName != nil && lastName != nil {
		leave.Employee = &models.Employee{
			ID:        leave.EmployeeID,
			FirstName: *firstName,
			LastName:  *lastName,
		}
	}
	return leave, nil
}

const leaveSelect = `
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date,
		       l.status, l.reason, l.reviewed_by, l.reviewed_at,
		       l.created_at, l.updated_at,
		       e.first_name, e.last_name
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id`

func (r *leaveRepository) Create(ctx context.Context, leave *models.Leave) error {
	if leave.EndDate.Before(leave.StartDate) {
		return repository.ErrLeaveInvalidDateRange
	}

	query := `
		INSERT INTO leaves (employee_id, leave_type, start_date, end_date, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.DB().QueryRowContext(
		ctx,
		query,
		leave.EmployeeID,
		leave.LeaveType,
		leave.StartDate,
		leave.EndDate,
		leave.Status,
		leave.Reason,
	).Scan(&leave.ID, &leave.CreatedAt, &leave.UpdatedAt)
}

func (r *leaveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.DB().ExecContext(ctx, "DELETE FROM leaves WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrLeaveNotFound
	}
	return nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Leave, error) {
	return scanLeave(r.DB().QueryRowContext(ctx, leaveSelect+" WHERE l.id = $1", id))
}

func (r *leaveRepository) List(ctx context.Context, filter repository.LeaveFilter) ([]models.Leave, error) {
	query := leaveSelect
	var conditions []string
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", len(args)))
	}
	if filter.LeaveType != nil {
		args = append(args, *filter.LeaveType)
		conditions = append(conditions, fmt.Sprintf("l.leave_type = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("l.start_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("l.end_date <= $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := "l.created_at"
	if filter.OrderBy != "" {
		orderBy = "l." + filter.OrderBy
	}
	query += " ORDER BY " + orderBy
	if filter.OrderDesc {
		query += " DESC"
	}
	if filter.Limit != nil {
		args = append(args, *filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset != nil {
		args = append(args, *filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []models.Leave
	for rows.Next() {
		leave, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, *leave)
	}
	return leaves, rows.Err()
}

func (r *leaveRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM leaves WHERE status = $1", status).Scan(&count)
	return count, err
}

func (r *leaveRepository) Review(ctx context.Context, id uuid.UUID, status string, reviewerID uuid.UUID, reviewedAt time.Time) error {
	query := `
		UPDATE leaves
		SET status = $1, reviewed_by = $2, reviewed_at = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND status = 'pending'`

	result, err := r.DB().ExecContext(ctx, query, status, reviewerID, reviewedAt, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Distinguish a missing leave from one already reviewed
		var exists bool
		if err := r.DB().QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM leaves WHERE id = $1)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return repository.ErrLeaveNotFound
		}
		return repository.ErrLeaveAlreadyReviewed
	}
	return nil
}
