package models

import (
	"time"

	"github.com/google/uuid"
)

// Attendance represents one employee's attendance record for a day.
// Records are created by the attendance terminal on RFID clock-in and
// completed on clock-out.
type Attendance struct {
	ID         uuid.UUID  `json:"id"`
	EmployeeID uuid.UUID  `json:"employee_id"`
	Employee   *Employee  `json:"employee,omitempty"`
	Date       time.Time  `json:"date"`
	TimeIn     time.Time  `json:"time_in"`
	TimeOut    *time.Time `json:"time_out"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ClockRequest represents a terminal clock-in/clock-out by RFID tag
type ClockRequest struct {
	RFID string `json:"rfid" binding:"required,max=64"`
}

// ClockResponse reports the outcome of a terminal punch
type ClockResponse struct {
	Action     string      `json:"action"` // "in" or "out"
	Attendance *Attendance `json:"attendance"`
	Employee   string      `json:"employee"`
}
