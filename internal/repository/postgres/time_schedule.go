package postgres

import (
	"context"
	"database/sql"
	"strings"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/google/uuid"
)

type timeScheduleRepository struct {
	repository.BaseRepository
}

// NewTimeScheduleRepository creates a postgres-backed schedule repository
func NewTimeScheduleRepository(db *sql.DB) repository.TimeScheduleRepository {
	return &timeScheduleRepository{BaseRepository: repository.NewBaseRepository(db)}
}

func scanTimeSchedule(row interface{ Scan(...interface{}) error }) (*models.TimeSchedule, error) {
	schedule := &models.TimeSchedule{}
	var data []byte
	var firstName, lastName *string
	err := row.Scan(
		&schedule.ID,
		&schedule.EmployeeID,
		&data,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
		&firstName,
		&lastName,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrScheduleNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := schedule.UnmarshalScheduleData(data); err != nil {
		return nil, err
	}
	if firstName != nil && lastName != nil {
		schedule.Employee = &models.Employee{
			ID:        schedule.EmployeeID,
			FirstName: *firstName,
			LastName:  *lastName,
		}
	}
	return schedule, nil
}

const timeScheduleSelect = `
		SELECT s.id, s.employee_id, s.schedule_data, s.created_at, s.updated_at,
		       e.first_name, e.last_name
		FROM time_schedules s
		JOIN employees e ON s.employee_id = e.id`

func (r *timeScheduleRepository) Create(ctx context.Context, schedule *models.TimeSchedule) error {
	data, err := schedule.MarshalScheduleData()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO time_schedules (employee_id, schedule_data)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err = r.DB().QueryRowContext(ctx, query, schedule.EmployeeID, data).
		Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return repository.ErrScheduleExists
	}
	return err
}

func (r *timeScheduleRepository) Update(ctx context.Context, schedule *models.TimeSchedule) error {
	data, err := schedule.MarshalScheduleData()
	if err != nil {
		return err
	}

	query := `
		UPDATE time_schedules
		SET schedule_data = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING updated_at`

	err = r.DB().QueryRowContext(ctx, query, data, schedule.ID).Scan(&schedule.UpdatedAt)
	if err == sql.ErrNoRows {
		return repository.ErrScheduleNotFound
	}
	return err
}

func (r *timeScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.DB().ExecContext(ctx, "DELETE FROM time_schedules WHERE id = $1", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrScheduleNotFound
	}
	return nil
}

func (r *timeScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TimeSchedule, error) {
	return scanTimeSchedule(r.DB().QueryRowContext(ctx, timeScheduleSelect+" WHERE s.id = $1", id))
}

func (r *timeScheduleRepository) GetByEmployeeID(ctx context.Context, employeeID uuid.UUID) (*models.TimeSchedule, error) {
	return scanTimeSchedule(r.DB().QueryRowContext(ctx, timeScheduleSelect+" WHERE s.employee_id = $1", employeeID))
}

func (r *timeScheduleRepository) List(ctx context.Context) ([]models.TimeSchedule, error) {
	rows, err := r.DB().QueryContext(ctx, timeScheduleSelect+" ORDER BY e.last_name, e.first_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []models.TimeSchedule
	for rows.Next() {
		schedule, err := scanTimeSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *schedule)
	}
	return schedules, rows.Err()
}
