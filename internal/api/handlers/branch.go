package handlers

import (
	"errors"
	"net/http"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BranchHandler handles branch-related requests
type BranchHandler struct {
	repo repository.BranchRepository
}

// NewBranchHandler creates a new BranchHandler
func NewBranchHandler(repo repository.BranchRepository) *BranchHandler {
	return &BranchHandler{repo: repo}
}

// ListBranches godoc
// @Summary List all branches
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Branch
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /branches [get]
func (h *BranchHandler) ListBranches(c *gin.Context) {
	branches, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch branches"})
		return
	}
	c.JSON(http.StatusOK, branches)
}

// GetBranch godoc
// @Summary Get branch by ID
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Branch ID (UUID)"
// @Success 200 {object} models.Branch
// @Failure 400 {object} models.ErrorResponse "Invalid branch ID"
// @Failure 404 {object} models.ErrorResponse "Branch not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /branches/{id} [get]
func (h *BranchHandler) GetBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid branch id"})
		return
	}

	branch, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "branch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, branch)
}

// CreateBranch godoc
// @Summary Create branch
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateBranchRequest true "Branch details"
// @Success 201 {object} models.Branch
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Branch already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /branches [post]
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	var req models.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	status := "active"
	if req.Status != nil {
		status = *req.Status
	}

	branch := &models.Branch{
		Name:      req.Name,
		ManagerID: req.ManagerID,
		Contact:   req.Contact,
		Status:    status,
	}

	if err := h.repo.Create(c.Request.Context(), branch); err != nil {
		if errors.Is(err, repository.ErrBranchExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "branch already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create branch"})
		return
	}

	c.JSON(http.StatusCreated, branch)
}

// UpdateBranch godoc
// @Summary Update branch
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Branch ID (UUID)"
// @Param request body models.UpdateBranchRequest true "Fields to update"
// @Success 200 {object} models.Branch
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Branch not found"
// @Failure 409 {object} models.ErrorResponse "Branch name already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /branches/{id} [put]
func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid branch id"})
		return
	}

	var req models.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	branch, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBranchNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "branch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.ManagerID != nil {
		branch.ManagerID = req.ManagerID
	}
	if req.Contact != nil {
		branch.Contact = req.Contact
	}
	if req.Status != nil {
		branch.Status = *req.Status
	}

	if err := h.repo.Update(c.Request.Context(), branch); err != nil {
		if errors.Is(err, repository.ErrBranchExists) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "branch name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update branch"})
		return
	}

	c.JSON(http.StatusOK, branch)
}

// DeleteBranch godoc
// @Summary Delete branch
// @Description Delete a branch. Fails when employees are still assigned to it.
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param id path string true "Branch ID (UUID)"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid branch ID"
// @Failure 404 {object} models.ErrorResponse "Branch not found"
// @Failure 409 {object} models.ErrorResponse "Branch has assigned employees"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /branches/{id} [delete]
func (h *BranchHandler) DeleteBranch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid branch id"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrBranchNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "branch not found"})
		case errors.Is(err, repository.ErrHasAssociatedRecords):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "branch has assigned employees"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete branch"})
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "branch deleted"})
}
