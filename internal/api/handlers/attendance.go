package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttendanceHandler handles attendance records and the RFID terminal
type AttendanceHandler struct {
	repo         repository.AttendanceRepository
	employeeRepo repository.EmployeeRepository
}

// NewAttendanceHandler creates a new AttendanceHandler
func NewAttendanceHandler(repo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, employeeRepo: employeeRepo}
}

// Clock godoc
// @Summary RFID terminal punch
// @Description Toggle clock-in/clock-out for the employee carrying the RFID tag. A punch with no open record for today clocks in, otherwise it clocks out.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body models.ClockRequest true "RFID tag"
// @Success 200 {object} models.ClockResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Unknown RFID tag"
// @Failure 409 {object} models.ErrorResponse "Employee is inactive"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /attendance/clock [post]
func (h *AttendanceHandler) Clock(c *gin.Context) {
	var req models.ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	employee, err := h.employeeRepo.GetByRFID(c.Request.Context(), req.RFID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "unknown rfid tag"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	if employee.Status != models.EmployeeStatusActive {
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "employee is inactive"})
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	open, err := h.repo.GetOpenByEmployee(c.Request.Context(), employee.ID, today)
	if err != nil && !errors.Is(err, repository.ErrAttendanceNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	if open != nil {
		if err := h.repo.ClockOut(c.Request.Context(), open.ID, now); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to clock out"})
			return
		}
		open.TimeOut = &now
		c.JSON(http.StatusOK, models.ClockResponse{
			Action:     "out",
			Attendance: open,
			Employee:   employee.FullName(),
		})
		return
	}

	attendance := &models.Attendance{
		EmployeeID: employee.ID,
		Date:       today,
		TimeIn:     now,
	}
	if err := h.repo.Create(c.Request.Context(), attendance); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to clock in"})
		return
	}

	c.JSON(http.StatusOK, models.ClockResponse{
		Action:     "in",
		Attendance: attendance,
		Employee:   employee.FullName(),
	})
}

// ListAttendance godoc
// @Summary List attendance records
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param employee_id query string false "Filter by employee ID"
// @Param from query string false "Filter from date (RFC 3339)"
// @Param to query string false "Filter to date (RFC 3339)"
// @Param limit query int false "Limit results"
// @Param offset query int false "Offset results"
// @Success 200 {array} models.Attendance
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	filter := repository.AttendanceFilter{}

	if employeeStr := c.Query("employee_id"); employeeStr != "" {
		employeeID, err := uuid.Parse(employeeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid employee id"})
			return
		}
		filter.EmployeeID = &employeeID
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid from date"})
			return
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid to date"})
			return
		}
		filter.To = &to
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid limit"})
			return
		}
		filter.Limit = &limit
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid offset"})
			return
		}
		filter.Offset = &offset
	}

	records, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch attendance"})
		return
	}

	c.JSON(http.StatusOK, records)
}
