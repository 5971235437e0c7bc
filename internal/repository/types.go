package repository

// ProductListFilter narrows the catalog product listing.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Brand        string
	Condition    string
	MinPrice     *float64
	MaxPrice     *float64
	FreeShipping *bool
	Search       string
	Sort         string
	Limit        int
	WithCategory bool
}

// OrderListFilter narrows the admin order listing.
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
	Search   string
}

// UserListFilter narrows the admin user listing.
type UserListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// ReviewListFilter narrows the admin review listing.
type ReviewListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
}

// QuoteListFilter narrows the admin quote listing.
type QuoteListFilter struct {
	Page     int
	PageSize int
	Status   string
}

// BlogPostListFilter narrows blog post listings.
type BlogPostListFilter struct {
	Page          int
	PageSize      int
	CategorySlug  string
	CategoryID    uint
	Limit         int
	OnlyPublished bool
	Search        string
}
