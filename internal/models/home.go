package models

import "time"

// HeroSlide is one slide of the homepage hero rotation.
type HeroSlide struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Subtitle   string    `json:"subtitle"`
	Image      string    `gorm:"type:varchar(500)" json:"image"`
	ButtonText string    `json:"button_text"`
	ButtonLink string    `gorm:"type:varchar(500)" json:"button_link"`
	Active     bool      `gorm:"default:true;index" json:"active"`
	SortOrder  int       `gorm:"default:0;index" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the table name.
func (HeroSlide) TableName() string {
	return "hero_slides"
}

// HomeBanner is a positioned promotional banner.
type HomeBanner struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `json:"title"`
	Image     string    `gorm:"type:varchar(500);not null" json:"image"`
	Link      string    `gorm:"type:varchar(500)" json:"link"`
	Position  string    `gorm:"type:varchar(30);index" json:"position"`
	Active    bool      `gorm:"default:true;index" json:"active"`
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name.
func (HomeBanner) TableName() string {
	return "home_banners"
}

// HomeCarousel is a product strip on the homepage. Kind decides how its
// products resolve: best_sellers, category or custom picks.
type HomeCarousel struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Subtitle   string    `json:"subtitle"`
	Kind       string    `gorm:"type:varchar(20);not null;default:'best_sellers'" json:"kind"`
	CategoryID *uint     `gorm:"index" json:"category_id"`
	ProductIDs UintArray `gorm:"type:json" json:"product_ids"`
	Limit      int       `gorm:"default:10" json:"limit"`
	Active     bool      `gorm:"default:true;index" json:"active"`
	SortOrder  int       `gorm:"default:0;index" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName sets the table name.
func (HomeCarousel) TableName() string {
	return "home_carousels"
}

// ContentBlock is a free-form content section of the homepage.
type ContentBlock struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Image     string    `gorm:"type:varchar(500)" json:"image"`
	Link      string    `gorm:"type:varchar(500)" json:"link"`
	Kind      string    `gorm:"type:varchar(30)" json:"kind"`
	Active    bool      `gorm:"default:true;index" json:"active"`
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name.
func (ContentBlock) TableName() string {
	return "content_blocks"
}
