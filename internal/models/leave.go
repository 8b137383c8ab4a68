package models

import (
	"time"

	"github.com/google/uuid"
)

// Leave status values.
const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// Leave types mirror the categories available in the leave filing form.
const (
	LeaveTypeVacation  = "vacation"
	LeaveTypeSick      = "sick"
	LeaveTypeEmergency = "emergency"
	LeaveTypeMaternity = "maternity"
	LeaveTypePaternity = "paternity"
	LeaveTypeUnpaid    = "unpaid"
)

// Leave represents a filed leave request
type Leave struct {
	ID         uuid.UUID  `json:"id"`
	EmployeeID uuid.UUID  `json:"employee_id"`
	Employee   *Employee  `json:"employee,omitempty"`
	LeaveType  string     `json:"leave_type"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	Status     string     `json:"status"`
	Reason     *string    `json:"reason"`
	ReviewedBy *uuid.UUID `json:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CreateLeaveRequest represents the request to file a leave
type CreateLeaveRequest struct {
	EmployeeID uuid.UUID `json:"employee_id" binding:"required"`
	LeaveType  string    `json:"leave_type" binding:"required,oneof=vacation sick emergency maternity paternity unpaid"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
	Reason     *string   `json:"reason" binding:"omitempty,max=500"`
}

// ReviewLeaveRequest represents the request to approve or reject a leave
type ReviewLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
