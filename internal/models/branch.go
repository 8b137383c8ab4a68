package models

import (
	"time"

	"github.com/google/uuid"
)

// Branch represents a company branch
type Branch struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ManagerID *uuid.UUID `json:"manager_id"`
	Manager   *Employee  `json:"manager,omitempty"`
	Contact   *string    `json:"contact"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateBranchRequest represents the request to create a branch
type CreateBranchRequest struct {
	Name      string     `json:"name" binding:"required,min=2,max=100"`
	ManagerID *uuid.UUID `json:"manager_id"`
	Contact   *string    `json:"contact" binding:"omitempty,max=100"`
	Status    *string    `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateBranchRequest represents the request to update a branch
type UpdateBranchRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=2,max=100"`
	ManagerID *uuid.UUID `json:"manager_id"`
	Contact   *string    `json:"contact" binding:"omitempty,max=100"`
	Status    *string    `json:"status" binding:"omitempty,oneof=active inactive"`
}
