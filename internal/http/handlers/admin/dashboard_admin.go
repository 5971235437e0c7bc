package admin

import (
	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats returns the back-office overview.
func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.DashboardService.Stats()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, stats)
}
