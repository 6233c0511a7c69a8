package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindcare/internal/models"
	"mindcare/internal/util"
)

// HealthHandler reports whether the Gemini client initialized at
// startup. Readiness is decided once; there is no recovery path.
type HealthHandler struct {
	ready bool
	model string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(ready bool, model string) *HealthHandler {
	return &HealthHandler{
		ready: ready,
		model: model,
	}
}

// Check handles health check requests
// @Summary Health check
// @Description Report whether the AI client is initialized
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /check [get]
func (h *HealthHandler) Check(c *gin.Context) {
	if !h.ready {
		c.JSON(http.StatusServiceUnavailable, models.HealthResponse{
			Status:  "error",
			Message: util.MsgNotInitialized,
			Model:   h.model,
		})
		return
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Message: util.MsgReady,
		Model:   h.model,
	})
}
