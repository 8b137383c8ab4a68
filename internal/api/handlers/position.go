package handlers

import (
	"errors"
	"net/http"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PositionHandler handles job position requests
type PositionHandler struct {
	repo repository.PositionRepository
}

// NewPositionHandler creates a new PositionHandler
func NewPositionHandler(repo repository.PositionRepository) *PositionHandler {
	return &PositionHandler{repo: repo}
}

// ListPositions godoc
// @Summary List all positions
// @Tags positions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Position
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /positions [get]
func (h *PositionHandler) ListPositions(c *gin.Context) {
	positions, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch positions"})
		return
	}
	c.JSON(http.StatusOK, positions)
}

// GetPosition godoc
// @Summary Get position by ID
// @Tags positions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Position ID (UUID)"
// @Success 200 {object} models.Position
// @Failure 400 {object} models.ErrorResponse "Invalid position ID"
// @Failure 404 {object} models.ErrorResponse "Position not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /positions/{id} [get]
func (h *PositionHandler) GetPosition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid position id"})
		return
	}

	position, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "position not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, position)
}

// CreatePosition godoc
// @Summary Create position
// @Tags positions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreatePositionRequest true "Position details"
// @Success 201 {object} models.Position
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Position already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /positions [post]
func (h *PositionHandler) CreatePosition(c *gin.Context) {
	var req models.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	status := "active"
	if req.Status != nil {
		status = *req.Status
	}

	position := &models.Position{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
	}

	if err := h.repo.Create(c.Request.Context(), position); err != nil {
		if errors.Is(err, repository.ErrPositionExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "position already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create position"})
		return
	}

	c.JSON(http.StatusCreated, position)
}

// UpdatePosition godoc
// @Summary Update position
// @Tags positions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Position ID (UUID)"
// @Param request body models.UpdatePositionRequest true "Fields to update"
// @Success 200 {object} models.Position
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Position not found"
// @Failure 409 {object} models.ErrorResponse "Position name already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /positions/{id} [put]
func (h *PositionHandler) UpdatePosition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid position id"})
		return
	}

	var req models.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	position, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPositionNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "position not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	if req.Name != nil {
		position.Name = *req.Name
	}
	if req.Description != nil {
		position.Description = req.Description
	}
	if req.Status != nil {
		position.Status = *req.Status
	}

	if err := h.repo.Update(c.Request.Context(), position); err != nil {
		if errors.Is(err, repository.ErrPositionExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "position name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update position"})
		return
	}

	c.JSON(http.StatusOK, position)
}

// DeletePosition godoc
// @Summary Delete position
// @Description Delete a position. Fails when employees still hold it.
// @Tags positions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Position ID (UUID)"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid position ID"
// @Failure 404 {object} models.ErrorResponse "Position not found"
// @Failure 409 {object} models.ErrorResponse "Position has assigned employees"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /positions/{id} [delete]
func (h *PositionHandler) DeletePosition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid position id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrPositionNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "position not found"})
		case errors.Is(err, repository.ErrHasAssociatedRecords):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "position has assigned employees"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete position"})
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "position deleted"})
}
