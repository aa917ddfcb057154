package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/andrewkandzuba/azure-function-chat-api/internal/models"
	"github.com/andrewkandzuba/azure-function-chat-api/pkg/function"
)

// HealthHandler handles health check requests for monitoring and load balancers
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// @Summary Health check
// @Description Returns the service health status
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp, err := h.Handle(c.Request.Context(), ginRequest(c))
	writeResponse(c, resp, err)
}

// Handle returns a healthy status with the current timestamp. There are
// no failure modes.
func (h *HealthHandler) Handle(ctx context.Context, req *function.Request) (*function.Response, error) {
	logrus.Info("Health check endpoint triggered")

	return jsonResponse(http.StatusOK, models.NewHealthResponse())
}
