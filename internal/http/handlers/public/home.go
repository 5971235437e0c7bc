package public

import (
	"time"

	"github.com/mercadoclone/api/internal/cache"
	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetHomeLayout returns the assembled homepage. The aggregate is cached
// in redis for a short window because every visitor hits it.
func (h *Handler) GetHomeLayout(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, hit, err := cache.GetHomeLayout(ctx); err == nil && hit {
		response.Success(c, cached)
		return
	} else if err != nil {
		shared.RequestLog(c).Warnw("home_layout_cache_read_failed", "error", err)
	}

	layout, err := h.HomeService.Layout()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	ttl := time.Duration(h.Config.Home.LayoutCacheTTLSeconds) * time.Second
	if err := cache.SetHomeLayout(ctx, layout, ttl); err != nil {
		shared.RequestLog(c).Warnw("home_layout_cache_write_failed", "error", err)
	}

	response.Success(c, layout)
}
