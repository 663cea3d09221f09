package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/quotepulse/internal/domain/dto"
	"github.com/guttosm/quotepulse/internal/middleware"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct{}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Register mounts GET /api/health on r. It touches no upstream dependency
// and carries its own allow-all CORS policy, so neither the configured
// origin list nor the rate limiter can fail it.
func (h *HealthHandler) Register(r gin.IRouter) {
	health := r.Group("/api/health", middleware.CORS([]string{"*"}))
	health.GET("", h.Health)
	health.OPTIONS("", noContent)
}

// Health godoc
// @Summary      Liveness probe
// @Description  Always returns healthy while the process is serving
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy"})
}
