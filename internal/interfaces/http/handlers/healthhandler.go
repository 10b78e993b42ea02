// Package handlers contains the Gin HTTP handlers. Each handler binds the
// request, delegates to a use case, and maps the result or error back to
// the shared response envelope.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lerms/internal/shared/utils"
)

type HealthHandler struct {
	startedAt time.Time
	version   string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		startedAt: time.Now(),
		version:   version,
	}
}

// Health godoc
// @Summary Health check
// @Description Report service liveness and uptime
// @Tags system
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	})
}

// Version godoc
// @Summary Service version
// @Tags system
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /version [get]
func (h *HealthHandler) Version(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"version": h.version,
	})
}
