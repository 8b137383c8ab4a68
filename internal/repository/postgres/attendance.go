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

type attendanceRepository struct {
	repository.BaseRepository
}

// NewAttendanceRepository creates a postgres-backed attendance repository
func NewAttendanceRepository(db *sql.DB) repository.AttendanceRepository {
	return &attendanceRepository{BaseRepository: repository.NewBaseRepository(db)}
}

func scanAttendance(row interface{ Scan(...interface{}) error }) (*models.Attendance, error) {
	attendance := &models.Attendance{}
	var firstName, lastName *string
	err := row.Scan(
		&attendance.ID,
		&attendance.EmployeeID,
		&attendance.Date,
		&attendance.TimeIn,
		&attendance.TimeOut,
		&attendance.CreatedAt,
		&attendance.UpdatedAt,
		&firstName,
		&lastName,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrAttendanceNotFound
	}
	if err != nil {
		return nil, err
	}
	if firstName != nil && lastName != nil {
		attendance.Employee = &models.Employee{
			ID:        attendance.EmployeeID,
			FirstName: *firstName,
			LastName:  *lastName,
		}
	}
	return attendance, nil
}

const attendanceSelect = `
		SELECT a.id, a.employee_id, a.date, a.time_in, a.time_out,
		       a.created_at, a.updated_at,
		       e.first_name, e.last_name
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id`

func (r *attendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendances (employee_id, date, time_in)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	return r.DB().QueryRowContext(
		ctx,
		query,
		attendance.EmployeeID,
		attendance.Date,
		attendance.TimeIn,
	).Scan(&attendance.ID, &attendance.CreatedAt, &attendance.UpdatedAt)
}

func (r *attendanceRepository) ClockOut(ctx context.Context, id uuid.UUID, timeOut time.Time) error {
	query := `
		UPDATE attendances
		SET time_out = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND time_out IS NULL`

	result, err := r.DB().ExecContext(ctx, query, timeOut, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		var exists bool
		if err := r.DB().QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM attendances WHERE id = $1)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return repository.ErrAttendanceNotFound
		}
		return repository.ErrAlreadyClockedOut
	}
	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error) {
	return scanAttendance(r.DB().QueryRowContext(ctx, attendanceSelect+" WHERE a.id = $1", id))
}

func (r *attendanceRepository) GetOpenByEmployee(ctx context.Context, employeeID uuid.UUID, date time.Time) (*models.Attendance, error) {
	query := attendanceSelect + " WHERE a.employee_id = $1 AND a.date = $2 AND a.time_out IS NULL"
	return scanAttendance(r.DB().QueryRowContext(ctx, query, employeeID, date))
}

func (r *attendanceRepository) List(ctx context.Context, filter repository.AttendanceFilter) ([]models.Attendance, error) {
	query := attendanceSelect
	var conditions []string
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := "a.date"
	if filter.OrderBy != "" {
		orderBy = "a." + filter.OrderBy
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

	var attendances []models.Attendance
	for rows.Next() {
		attendance, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		attendances = append(attendances, *attendance)
	}
	return attendances, rows.Err()
}

func (r *attendanceRepository) CountPresent(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := r.DB().QueryRowContext(ctx,
		"SELECT COUNT(DISTINCT employee_id) FROM attendances WHERE date = $1", date).Scan(&count)
	return count, err
}
