package admin

import (
	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/service"

	"github.com/gin-gonic/gin"
)

type updateDisplaySettingsRequest struct {
	Settings []service.DisplaySettingUpdate `json:"settings" binding:"required"`
}

type displaySettingsPayload struct {
	Settings interface{}         `json:"settings"`
	Groups   map[string][]string `json:"groups"`
}

// ListDisplaySettings returns the global display flags with their
// grouping for the back-office form.
func (h *Handler) ListDisplaySettings(c *gin.Context) {
	settings, groups, err := h.DisplaySettingService.ListGrouped()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, displaySettingsPayload{Settings: settings, Groups: groups})
}

// UpdateDisplaySettings applies a batch of global flag changes. Unknown
// keys are ignored.
func (h *Handler) UpdateDisplaySettings(c *gin.Context) {
	var req updateDisplaySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.DisplaySettingService.UpdateGlobal(req.Settings); err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	global, err := h.DisplaySettingService.GlobalMap()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, global)
}
