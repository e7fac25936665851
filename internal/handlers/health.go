package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ucpmaroc-backend/internal/models"
)

// Injected at build time via -ldflags.
var version = "dev"

// HealthHandler godoc
// @Summary     Health check
// @Description Liveness probe used by the hosting platform
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Service: "ucpmaroc-backend",
		Version: version,
	})
}
