package service

import (
	"unicode"

	"github.com/mercadoclone/api/internal/config"
)

// validatePassword checks a plaintext password against the configured
// policy.
func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	minLength := policy.MinLength
	if minLength <= 0 {
		minLength = 6
	}
	if len(password) < minLength {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if policy.RequireUpper && !hasUpper {
		return ErrWeakPassword
	}
	if policy.RequireLower && !hasLower {
		return ErrWeakPassword
	}
	if policy.RequireNumber && !hasNumber {
		return ErrWeakPassword
	}
	if policy.RequireSpecial && !hasSpecial {
		return ErrWeakPassword
	}
	return nil
}
