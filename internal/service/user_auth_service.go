package service

import (
	"errors"
	"strings"
	"time"

	"github.com/mercadoclone/api/internal/config"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserAuthService authenticates storefront customers. User tokens are
// signed with a secret separate from the admin one.
type UserAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewUserAuthService creates a user auth service.
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository) *UserAuthService {
	return &UserAuthService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// UserJWTClaims are the customer token claims.
type UserJWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// RegisterInput carries a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Location string
}

// GenerateJWT signs a customer token.
func (s *UserAuthService) GenerateJWT(user *models.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.UserJWT.ExpireHours) * time.Hour)

	claims := UserJWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.UserJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT validates a customer token.
func (s *UserAuthService) ParseJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &UserJWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.UserJWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Register creates a customer account and returns it with a signed
// token.
func (s *UserAuthService) Register(input RegisterInput) (*models.User, string, time.Time, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, "", time.Time{}, err
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if count > 0 {
		return nil, "", time.Time{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := models.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Location:     strings.TrimSpace(input.Location),
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateJWT(&user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return &user, token, expiresAt, nil
}

// Login authenticates a customer by email and password.
func (s *UserAuthService) Login(email, password string) (*models.User, string, time.Time, error) {
	user, err := s.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Me fetches the authenticated customer.
func (s *UserAuthService) Me(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
