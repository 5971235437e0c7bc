package service

import (
	"strings"

	"github.com/mercadoclone/api/internal/config"
	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AdminAccountService manages back-office accounts. Only super admins
// reach these operations; the router enforces that.
type AdminAccountService struct {
	cfg  *config.Config
	repo repository.AdminRepository
}

// NewAdminAccountService creates an admin account service.
func NewAdminAccountService(cfg *config.Config, repo repository.AdminRepository) *AdminAccountService {
	return &AdminAccountService{cfg: cfg, repo: repo}
}

// CreateAdminInput carries a new back-office account.
type CreateAdminInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// List returns every back-office account.
func (s *AdminAccountService) List() ([]models.Admin, error) {
	return s.repo.List()
}

// Create registers a back-office account.
func (s *AdminAccountService) Create(input CreateAdminInput) (*models.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = constants.AdminRoleAdmin
	}
	if role != constants.AdminRoleAdmin && role != constants.AdminRoleSuper {
		return nil, ErrInvalidStatus
	}

	count, err := s.repo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := models.Admin{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(&admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Delete removes a back-office account. Super admin accounts cannot be
// deleted.
func (s *AdminAccountService) Delete(id uint) error {
	admin, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}
	if admin.Role == constants.AdminRoleSuper {
		return ErrSuperAdminProtected
	}
	return s.repo.Delete(id)
}
