package models

// LoginRequest represents the login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=50" example:"johndoe"`
	Password string `json:"password" binding:"required" example:"mypassword123"`
}

// LoginResponse represents the response to a successful login
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// DashboardStats aggregates the figures shown on the dashboard
type DashboardStats struct {
	TotalEmployees    int `json:"total_employees"`
	ActiveBranches    int `json:"active_branches"`
	PresentToday      int `json:"present_today"`
	PresentPercentage int `json:"present_percentage"`
	PendingLeaves     int `json:"pending_leaves"`
	PayrollThisMonth  int `json:"payroll_this_month"`
	AvgAttendance     int `json:"avg_attendance"`
}
