package models

import "time"

// BlogCategory groups blog posts.
type BlogCategory struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
}

// TableName sets the table name.
func (BlogCategory) TableName() string {
	return "blog_categories"
}

// BlogPost is one blog article. Only published posts are served on the
// public API.
type BlogPost struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	Title          string     `gorm:"not null" json:"title"`
	Slug           string     `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt        string     `gorm:"type:text" json:"excerpt"`
	Content        string     `gorm:"type:text" json:"content"`
	Image          string     `gorm:"type:varchar(500)" json:"image"`
	BlogCategoryID *uint      `gorm:"index" json:"blog_category_id"`
	Author         string     `json:"author"`
	Published      bool       `gorm:"default:false;index" json:"published"`
	PublishedAt    *time.Time `gorm:"index" json:"published_at"`
	CreatedAt      time.Time  `gorm:"index" json:"created_at"`

	BlogCategory *BlogCategory `gorm:"foreignKey:BlogCategoryID" json:"blog_category,omitempty"`
}

// TableName sets the table name.
func (BlogPost) TableName() string {
	return "blog_posts"
}

// BlogComment is a reader comment pending moderation until Approved.
type BlogComment struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	PostID      uint      `gorm:"not null;index" json:"post_id"`
	AuthorName  string    `gorm:"not null" json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Approved    bool      `gorm:"default:false;index" json:"approved"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (BlogComment) TableName() string {
	return "blog_comments"
}
