package repository

import "errors"

var (
	// Common errors
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrHasAssociatedRecords = errors.New("has associated records")
	ErrDuplicateEntry       = errors.New("duplicate entry")

	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
	ErrAdminDelete    = errors.New("cannot delete admin user")

	// Token errors
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")

	// Employee errors
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeNumberExists = errors.New("employee number already exists")
	ErrRFIDExists           = errors.New("rfid tag already assigned")

	// Branch errors
	ErrBranchNotFound = errors.New("branch not found")
	ErrBranchExists   = errors.New("branch already exists")

	// Position errors
	ErrPositionNotFound = errors.New("position not found")
	ErrPositionExists   = errors.New("position already exists")

	// Schedule errors
	ErrScheduleNotFound = errors.New("time schedule not found")
	ErrScheduleExists   = errors.New("employee already has a schedule")

	// Leave errors
	ErrLeaveNotFound         = errors.New("leave not found")
	ErrLeaveAlreadyReviewed  = errors.New("leave already reviewed")
	ErrLeaveInvalidDateRange = errors.New("leave end date before start date")

	// Attendance errors
	ErrAttendanceNotFound = errors.New("attendance not found")
	ErrAlreadyClockedOut  = errors.New("already clocked out")
)
