package repository

import (
	"context"
	"time"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

// AttendanceRepository defines the interface for attendance operations
type AttendanceRepository interface {
	Repository
	Create(ctx context.Context, attendance *models.Attendance) error
	ClockOut(ctx context.Context, id uuid.UUID, timeOut time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Attendance, error)
	GetOpenByEmployee(ctx context.Context, employeeID uuid.UUID, date time.Time) (*models.Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]models.Attendance, error)
	CountPresent(ctx context.Context, date time.Time) (int, error)
}

// AttendanceFilter defines the filter options for listing attendance
type AttendanceFilter struct {
	EmployeeID *uuid.UUID
	From       *time.Time
	To         *time.Time
	OrderBy    string
	OrderDesc  bool
	Limit      *int
	Offset     *int
}
