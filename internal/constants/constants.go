package constants

// Order status constants. Values are the Portuguese labels the
// storefront renders directly.
const (
	OrderStatusProcessing = "Processando"
	OrderStatusInTransit  = "Em trânsito"
	OrderStatusDelivered  = "Entregue"
	OrderStatusCanceled   = "Cancelado"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderStatusProcessing,
	OrderStatusInTransit,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

// Product action type constants.
const (
	ActionTypeBuy      = "buy"
	ActionTypeWhatsapp = "whatsapp"
	ActionTypeQuote    = "quote"
)

// Product condition constants.
const (
	ConditionNew         = "Novo"
	ConditionUsed        = "Usado"
	ConditionRefurbished = "Recondicionado"
)

// Quote request status constants.
const (
	QuoteStatusPending   = "pending"
	QuoteStatusContacted = "contacted"
	QuoteStatusConverted = "converted"
	QuoteStatusClosed    = "closed"
)

// QuoteStatuses lists every valid quote status.
var QuoteStatuses = []string{
	QuoteStatusPending,
	QuoteStatusContacted,
	QuoteStatusConverted,
	QuoteStatusClosed,
}

// Admin role constants.
const (
	AdminRoleAdmin = "admin"
	AdminRoleSuper = "super_admin"
)

// Homepage carousel kind constants.
const (
	CarouselKindBestSellers = "best_sellers"
	CarouselKindCategory    = "category"
	CarouselKindCustom      = "custom"
)

// Product list sort option constants.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
	SortRelevance = "relevance"
)

// Recommendation limits.
const (
	RelatedLimit        = 8
	SuggestedLimit      = 6
	AlsoViewedLimit     = 8
	AlsoViewedMinBefore = 4 // backfill kicks in below this count
)

// Dashboard thresholds.
const (
	LowStockThreshold = 5
)

// Cache defaults.
const (
	RedisPrefixDefault = "ml"
)
