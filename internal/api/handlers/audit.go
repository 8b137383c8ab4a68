package handlers

import (
	"net/http"
	"strconv"
	"time"

	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditHandler exposes the audit log to administrators
type AuditHandler struct {
	repo repository.AuditLogRepository
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(repo repository.AuditLogRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// ListAuditLogs godoc
// @Summary List audit log entries
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "Filter by actor user ID"
// @Param action query string false "Filter by action"
// @Param created_after query string false "Entries created after (RFC 3339)"
// @Param created_before query string false "Entries created before (RFC 3339)"
// @Param limit query int false "Limit results"
// @Param offset query int false "Offset results"
// @Success 200 {array} models.AuditLog
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /audit [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	filter := repository.AuditLogFilter{}

	if userStr := c.Query("user_id"); userStr != "" {
		userID, err := uuid.Parse(userStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
			return
		}
		filter.UserID = &userID
	}
	if action := c.Query("action"); action != "" {
		filter.Actions = []models.AuditAction{models.AuditAction(action)}
	}
	if afterStr := c.Query("created_after"); afterStr != "" {
		after, err := time.Parse(time.RFC3339, afterStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid created_after date"})
			return
		}
		filter.CreatedAfter = &after
	}
	if beforeStr := c.Query("created_before"); beforeStr != "" {
		before, err := time.Parse(time.RFC3339, beforeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid created_before date"})
			return
		}
		filter.CreatedBefore = &before
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

	entries, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to fetch audit log"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
