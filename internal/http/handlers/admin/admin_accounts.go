package admin

import (
	"errors"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/i18n"
	"github.com/mercadoclone/api/internal/service"

	"github.com/gin-gonic/gin"
)

type createAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// ListAdmins returns all back-office accounts. Reachable only by
// super_admin through the policy layer.
func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.AdminAccountService.List()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, admins)
}

// CreateAdmin registers a back-office account.
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	admin, err := h.AdminAccountService.Create(service.CreateAdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
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
		respondWithMappedError(c, err, adminAccountErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, admin)
}

// DeleteAdmin removes a back-office account. Super admin accounts are
// protected.
func (h *Handler) DeleteAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.AdminAccountService.Delete(id); err != nil {
		respondWithMappedError(c, err, adminAccountErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}
