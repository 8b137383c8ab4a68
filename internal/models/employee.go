package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee status values.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// Employee represents an employee record with the full HR profile
type Employee struct {
	ID                    uuid.UUID  `json:"id"`
	EmployeeNumber        string     `json:"employee_number"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	MiddleName            *string    `json:"middle_name"`
	Email                 *string    `json:"email"`
	Phone                 *string    `json:"phone"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	Gender                *string    `json:"gender"`
	CivilStatus           *string    `json:"civil_status"`
	Address               *string    `json:"address"`
	PositionID            *uuid.UUID `json:"position_id"`
	Position              *Position  `json:"position,omitempty"`
	BranchID              *uuid.UUID `json:"branch_id"`
	Branch                *Branch    `json:"branch,omitempty"`
	DateHired             *time.Time `json:"date_hired"`
	BasicSalary           *float64   `json:"basic_salary"`
	RFID                  *string    `json:"rfid"`
	Status                string     `json:"status"`
	SSS                   *string    `json:"sss"`
	Philhealth            *string    `json:"philhealth"`
	Pagibig               *string    `json:"pagibig"`
	TIN                   *string    `json:"tin"`
	BankName              *string    `json:"bank_name"`
	BankAccount           *string    `json:"bank_account"`
	EmergencyContactName  *string    `json:"emergency_contact_name"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone"`
	DeletedAt             *time.Time `json:"deleted_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// FullName returns the display name used in listings
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	EmployeeNumber        string     `json:"employee_number" binding:"required,max=50"`
	FirstName             string     `json:"first_name" binding:"required,max=100"`
	LastName              string     `json:"last_name" binding:"required,max=100"`
	MiddleName            *string    `json:"middle_name" binding:"omitempty,max=100"`
	Email                 *string    `json:"email" binding:"omitempty,email"`
	Phone                 *string    `json:"phone" binding:"omitempty,max=30"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	Gender                *string    `json:"gender" binding:"omitempty,oneof=male female"`
	CivilStatus           *string    `json:"civil_status" binding:"omitempty,max=30"`
	Address               *string    `json:"address"`
	PositionID            *uuid.UUID `json:"position_id"`
	BranchID              *uuid.UUID `json:"branch_id"`
	DateHired             *time.Time `json:"date_hired"`
	BasicSalary           *float64   `json:"basic_salary" binding:"omitempty,gte=0"`
	RFID                  *string    `json:"rfid" binding:"omitempty,max=64"`
	Status                *string    `json:"status" binding:"omitempty,oneof=active inactive"`
	SSS                   *string    `json:"sss" binding:"omitempty,max=30"`
	Philhealth            *string    `json:"philhealth" binding:"omitempty,max=30"`
	Pagibig               *string    `json:"pagibig" binding:"omitempty,max=30"`
	TIN                   *string    `json:"tin" binding:"omitempty,max=30"`
	BankName              *string    `json:"bank_name" binding:"omitempty,max=100"`
	BankAccount           *string    `json:"bank_account" binding:"omitempty,max=50"`
	EmergencyContactName  *string    `json:"emergency_contact_name" binding:"omitempty,max=150"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone" binding:"omitempty,max=30"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	EmployeeNumber        *string    `json:"employee_number" binding:"omitempty,max=50"`
	FirstName             *string    `json:"first_name" binding:"omitempty,max=100"`
	LastName              *string    `json:"last_name" binding:"omitempty,max=100"`
	MiddleName            *string    `json:"middle_name" binding:"omitempty,max=100"`
	Email                 *string    `json:"email" binding:"omitempty,email"`
	Phone                 *string    `json:"phone" binding:"omitempty,max=30"`
	DateOfBirth           *time.Time `json:"date_of_birth"`
	Gender                *string    `json:"gender" binding:"omitempty,oneof=male female"`
	CivilStatus           *string    `json:"civil_status" binding:"omitempty,max=30"`
	Address               *string    `json:"address"`
	PositionID            *uuid.UUID `json:"position_id"`
	BranchID              *uuid.UUID `json:"branch_id"`
	DateHired             *time.Time `json:"date_hired"`
	BasicSalary           *float64   `json:"basic_salary" binding:"omitempty,gte=0"`
	RFID                  *string    `json:"rfid" binding:"omitempty,max=64"`
	Status                *string    `json:"status" binding:"omitempty,oneof=active inactive"`
	SSS                   *string    `json:"sss" binding:"omitempty,max=30"`
	Philhealth            *string    `json:"philhealth" binding:"omitempty,max=30"`
	Pagibig               *string    `json:"pagibig" binding:"omitempty,max=30"`
	TIN                   *string    `json:"tin" binding:"omitempty,max=30"`
	BankName              *string    `json:"bank_name" binding:"omitempty,max=100"`
	BankAccount           *string    `json:"bank_account" binding:"omitempty,max=50"`
	EmergencyContactName  *string    `json:"emergency_contact_name" binding:"omitempty,max=150"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone" binding:"omitempty,max=30"`
}
