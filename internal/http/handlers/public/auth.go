package public

import (
	"errors"
	"strings"
	"time"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/i18n"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Location string `json:"location"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authPayload struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

// UserRegister creates a customer account.
func (h *Handler) UserRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, service.ErrWeakPassword) {
			minLength := h.Config.Security.PasswordPolicy.MinLength
			if minLength <= 0 {
				minLength = 6
			}
			msg := i18n.Sprintf(i18n.ResolveLocale(c), "error.weak_password", minLength)
			shared.RespondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
			return
		}
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "error.internal")
		return
	}

	response.Success(c, authPayload{Token: token, ExpiresAt: expiresAt, User: user})
}

// UserLogin authenticates a customer.
func (h *Handler) UserLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Login(strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "error.internal")
		return
	}

	response.Success(c, authPayload{Token: token, ExpiresAt: expiresAt, User: user})
}

// GetCurrentUser returns the authenticated customer.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	userID, ok := shared.GetContextUintWithKeys(c, "user_id", "error.unauthorized", "error.internal")
	if !ok {
		return
	}

	user, err := h.UserAuthService.Me(userID)
	if err != nil {
		respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, user)
}
