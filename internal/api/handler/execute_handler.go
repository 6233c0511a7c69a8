package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mindcare/internal/models"
	"mindcare/internal/service"
	"mindcare/internal/util"
)

// Adviser generates a text response for a user query. It is satisfied
// by service.GeminiService; a nil Adviser means the client never
// initialized and the process is degraded.
type Adviser interface {
	Advise(ctx context.Context, query string) (string, error)
}

// ExecuteHandler handles query execution requests
type ExecuteHandler struct {
	adviser Adviser
	logger  *util.Logger
}

// NewExecuteHandler creates a new execute handler
func NewExecuteHandler(adviser Adviser) *ExecuteHandler {
	return &ExecuteHandler{
		adviser: adviser,
		logger:  util.NewLogger("ExecuteHandler"),
	}
}

// Execute handles query execution requests
// @Summary Execute a mental health query
// @Description Send a query and get supportive, non-clinical guidance
// @Tags execute
// @Accept json
// @Produce json
// @Param request body models.ExecuteRequest true "Query request"
// @Success 200 {object} models.ExecuteResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/execute [post]
func (h *ExecuteHandler) Execute(c *gin.Context) {
	if h.adviser == nil {
		h.respondError(c, http.StatusServiceUnavailable, util.MsgNotInitialized)
		return
	}

	var req models.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, util.MsgInvalidBody)
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		h.respondError(c, http.StatusBadRequest, util.MsgMissingQuery)
		return
	}

	result, err := h.adviser.Advise(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrUnavailable) {
			h.respondError(c, http.StatusServiceUnavailable, fmt.Sprintf("AI service error: %v", err))
			return
		}
		// Unclassified failures are logged but never leaked to the caller.
		h.logger.Error("Failed to process query", err)
		h.respondError(c, http.StatusInternalServerError, util.MsgInternalError)
		return
	}

	c.JSON(http.StatusOK, models.ExecuteResponse{
		Success: true,
		Result:  result,
	})
}

func (h *ExecuteHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.ErrorResponse{Error: message})
}
