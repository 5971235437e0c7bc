package admin

import (
	"errors"
	"time"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/service"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginPayload struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Admin     *models.Admin `json:"admin"`
}

// AdminLogin authenticates a back-office account.
func (h *Handler) AdminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			shared.RespondError(c, response.CodeUnauthorized, "error.invalid_credentials", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, loginPayload{Token: token, ExpiresAt: expiresAt, Admin: admin})
}
