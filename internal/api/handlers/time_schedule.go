package handlers

import (
	"errors"
	"net/http"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TimeScheduleHandler handles weekly work schedule requests
type TimeScheduleHandler struct {
	repo         repository.TimeScheduleRepository
	employeeRepo repository.EmployeeRepository
}

// NewTimeScheduleHandler creates a new TimeScheduleHandler
func NewTimeScheduleHandler(repo repository.TimeScheduleRepository, employeeRepo repository.EmployeeRepository) *TimeScheduleHandler {
	return &TimeScheduleHandler{repo: repo, employeeRepo: employeeRepo}
}

// ListSchedules godoc
// @Summary List all schedules
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TimeSchedule
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /schedules [get]
func (h *TimeScheduleHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch schedules"})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// GetSchedule godoc
// @Summary Get schedule by ID
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {object} models.TimeSchedule
// @Failure 400 {object} models.ErrorResponse "Invalid schedule ID"
// @Failure 404 {object} models.ErrorResponse "Schedule not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /schedules/{id} [get]
func (h *TimeScheduleHandler) GetSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	schedule, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// CreateSchedule godoc
// @Summary Create schedule
// @Description Assign a weekly schedule to an employee. Each employee has at most one.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateTimeScheduleRequest true "Schedule details"
// @Success 201 {object} models.TimeSchedule
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Employee not found"
// @Failure 409 {object} models.ErrorResponse "Employee already has a schedule"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /schedules [post]
func (h *TimeScheduleHandler) CreateSchedule(c *gin.Context) {
	var req models.CreateTimeScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.employeeRepo.GetByID(c.Request.Context(), req.EmployeeID); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	schedule := &models.TimeSchedule{
		EmployeeID:   req.EmployeeID,
		ScheduleData: req.ScheduleData,
	}

	if err := h.repo.Create(c.Request.Context(), schedule); err != nil {
		if errors.Is(err, repository.ErrScheduleExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "employee already has a schedule"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create schedule"})
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// UpdateSchedule godoc
// @Summary Update schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID (UUID)"
// @Param request body models.UpdateTimeScheduleRequest true "Replacement schedule days"
// @Success 200 {object} models.TimeSchedule
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Schedule not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /schedules/{id} [put]
func (h *TimeScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	var req models.UpdateTimeScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	schedule, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	schedule.ScheduleData = req.ScheduleData

	if err := h.repo.Update(c.Request.Context(), schedule); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update schedule"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule godoc
// @Summary Delete schedule
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID (UUID)"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid schedule ID"
// @Failure 404 {object} models.ErrorResponse "Schedule not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /schedules/{id} [delete]
func (h *TimeScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete schedule"})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "schedule deleted"})
}
