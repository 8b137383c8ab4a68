package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hrhub/internal/auth"
	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaveHandler handles leave filing and review requests
type LeaveHandler struct {
	repo         repository.LeaveRepository
	employeeRepo repository.EmployeeRepository
}

// NewLeaveHandler creates a new LeaveHandler
func NewLeaveHandler(repo repository.LeaveRepository, employeeRepo repository.EmployeeRepository) *LeaveHandler {
	return &LeaveHandler{repo: repo, employeeRepo: employeeRepo}
}

// ListLeaves godoc
// @Summary List leaves
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Param employee_id query string false "Filter by employee ID"
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param leave_type query string false "Filter by leave type"
// @Param limit query int false "Limit results"
// @Param offset query int false "Offset results"
// @Success 200 {array} models.Leave
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /leaves [get]
func (h *LeaveHandler) ListLeaves(c *gin.Context) {
	filter := repository.LeaveFilter{}

	if employeeStr := c.Query("employee_id"); employeeStr != "" {
		employeeID, err := uuid.Parse(employeeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid employee id"})
			return
		}
		filter.EmployeeID = &employeeID
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if leaveType := c.Query("leave_type"); leaveType != "" {
		filter.LeaveType = &leaveType
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

	leaves, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch leaves"})
		return
	}

	c.JSON(http.StatusOK, leaves)
}

// GetLeave godoc
// @Summary Get leave by ID
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave ID (UUID)"
// @Success 200 {object} models.Leave
// @Failure 400 {object} models.ErrorResponse "Invalid leave ID"
// @Failure 404 {object} models.ErrorResponse "Leave not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /leaves/{id} [get]
func (h *LeaveHandler) GetLeave(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid leave id"})
		return
	}

	leave, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrLeaveNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "leave not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, leave)
}

// CreateLeave godoc
// @Summary File a leave request
// @Tags leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateLeaveRequest true "Leave details"
// @Success 201 {object} models.Leave
// @Failure 400 {object} models.ErrorResponse "Invalid request or date range"
// @Failure 404 {object} models.ErrorResponse "Employee not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /leaves [post]
func (h *LeaveHandler) CreateLeave(c *gin.Context) {
	var req models.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if req.EndDate.Before(req.StartDate) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "end date before start date"})
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

	leave := &models.Leave{
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     models.LeaveStatusPending,
		Reason:     req.Reason,
	}

	if err := h.repo.Create(c.Request.Context(), leave); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to file leave"})
		return
	}

	c.JSON(http.StatusCreated, leave)
}

// ReviewLeave godoc
// @Summary Approve or reject a leave
// @Description Move a pending leave to approved or rejected. A reviewed leave cannot be reviewed again.
// @Tags leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave ID (UUID)"
// @Param request body models.ReviewLeaveRequest true "Review verdict"
// @Success 200 {object} models.Leave
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Leave not found"
// @Failure 409 {object} models.ErrorResponse "Leave already reviewed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /leaves/{id}/review [post]
func (h *LeaveHandler) ReviewLeave(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid leave id"})
		return
	}

	var req models.ReviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	reviewer := auth.GetUserFromContext(c)
	if reviewer == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.repo.Review(c.Request.Context(), id, req.Status, reviewer.ID, time.Now()); err != nil {
		switch {
		case errors.Is(err, repository.ErrLeaveNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "leave not found"})
		case errors.Is(err, repository.ErrLeaveAlreadyReviewed):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "leave already reviewed"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to review leave"})
		}
		return
	}

	leave, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch leave"})
		return
	}

	c.JSON(http.StatusOK, leave)
}

// DeleteLeave godoc
// @Summary Delete leave
// @Tags leaves
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave ID (UUID)"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid leave ID"
// @Failure 404 {object} models.ErrorResponse "Leave not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /leaves/{id} [delete]
func (h *LeaveHandler) DeleteLeave(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid leave id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrLeaveNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "leave not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete leave"})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "leave deleted"})
}
