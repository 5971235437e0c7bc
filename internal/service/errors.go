package service

import "errors"

// Sentinel errors shared by the service layer. Handlers map these to
// response codes and localized messages.
var (
	ErrNotFound            = errors.New("record not found")
	ErrSlugExists          = errors.New("slug already exists")
	ErrEmailTaken          = errors.New("email already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrWeakPassword        = errors.New("password does not meet policy")
	ErrNothingToUpdate     = errors.New("no fields to update")
	ErrSelfParent          = errors.New("category cannot be its own parent")
	ErrParentNotFound      = errors.New("parent category not found")
	ErrCategoryInUse       = errors.New("category has products")
	ErrCategoryHasChildren = errors.New("category has subcategories")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidRating       = errors.New("rating out of range")
	ErrAlreadyReviewed     = errors.New("product already reviewed by user")
	ErrSuperAdminProtected = errors.New("super admin cannot be removed")
)
