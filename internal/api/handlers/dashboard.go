package handlers

import (
	"net/http"
	"time"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/gin-gonic/gin"
)

// DashboardHandler aggregates the headline figures for the dashboard
type DashboardHandler struct {
	employeeRepo   repository.EmployeeRepository
	branchRepo     repository.BranchRepository
	leaveRepo      repository.LeaveRepository
	attendanceRepo repository.AttendanceRepository
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(
	employeeRepo repository.EmployeeRepository,
	branchRepo repository.BranchRepository,
	leaveRepo repository.LeaveRepository,
	attendanceRepo repository.AttendanceRepository,
) *DashboardHandler {
	return &DashboardHandler{
		employeeRepo:   employeeRepo,
		branchRepo:     branchRepo,
		leaveRepo:      leaveRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Returns headcount, branch, attendance and pending leave figures
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	totalEmployees, err := h.employeeRepo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to compute stats"})
		return
	}

	activeBranches, err := h.branchRepo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to compute stats"})
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	presentToday, err := h.attendanceRepo.CountPresent(ctx, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to compute stats"})
		return
	}

	pendingLeaves, err := h.leaveRepo.CountByStatus(ctx, models.LeaveStatusPending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to compute stats"})
		return
	}

	presentPercentage := 0
	if totalEmployees > 0 {
		presentPercentage = presentToday * 100 / totalEmployees
	}

	payroll, err := h.monthlyPayroll(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, models.DashboardStats{
		TotalEmployees:    totalEmployees,
		ActiveBranches:    activeBranches,
		PresentToday:      presentToday,
		PresentPercentage: presentPercentage,
		PendingLeaves:     pendingLeaves,
		PayrollThisMonth:  payroll,
		AvgAttendance:     presentPercentage,
	})
}

// monthlyPayroll sums the basic salaries of active employees
func (h *DashboardHandler) monthlyPayroll(c *gin.Context) (int, error) {
	status := models.EmployeeStatusActive
	employees, err := h.employeeRepo.List(c.Request.Context(), repository.EmployeeFilter{Status: &status})
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range employees {
		if e.BasicSalary != nil {
			total += *e.BasicSalary
		}
	}
	return int(total), nil
}
