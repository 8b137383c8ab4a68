package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScheduleDay is one day's entry in an employee's weekly schedule
type ScheduleDay struct {
	Day     string `json:"day" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	TimeIn  string `json:"time_in" binding:"required,timehhmm"`
	TimeOut string `json:"time_out" binding:"required,timehhmm"`
	RestDay bool   `json:"rest_day"`
}

// TimeSchedule represents an employee's weekly work schedule. The
// schedule itself is stored as a JSON document, one entry per day.
type TimeSchedule struct {
	ID           uuid.UUID     `json:"id"`
	EmployeeID   uuid.UUID     `json:"employee_id"`
	Employee     *Employee     `json:"employee,omitempty"`
	ScheduleData []ScheduleDay `json:"schedule_data"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// MarshalScheduleData serializes the schedule days for storage
func (s *TimeSchedule) MarshalScheduleData() ([]byte, error) {
	return json.Marshal(s.ScheduleData)
}

// UnmarshalScheduleData loads serialized schedule days from storage
func (s *TimeSchedule) UnmarshalScheduleData(data []byte) error {
	if len(data) == 0 {
		s.ScheduleData = nil
		return nil
	}
	return json.Unmarshal(data, &s.ScheduleData)
}

// CreateTimeScheduleRequest represents the request to create a schedule
type CreateTimeScheduleRequest struct {
	EmployeeID   uuid.UUID     `json:"employee_id" binding:"required"`
	ScheduleData []ScheduleDay `json:"schedule_data" binding:"required,dive"`
}

// UpdateTimeScheduleRequest represents the request to update a schedule
type UpdateTimeScheduleRequest struct {
	ScheduleData []ScheduleDay `json:"schedule_data" binding:"required,dive"`
}
