package repository

import (
	"errors"
	"strings"

	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// BlogRepository is the blog data access interface.
type BlogRepository interface {
	ListCategories() ([]models.BlogCategory, error)
	GetCategoryByID(id uint) (*models.BlogCategory, error)
	CreateCategory(category *models.BlogCategory) error
	UpdateCategory(category *models.BlogCategory) error
	DeleteCategory(id uint) error
	CountCategorySlug(slug string, excludeID *uint) (int64, error)
	CountPostsInCategory(categoryID uint) (int64, error)

	ListPosts(filter BlogPostListFilter) ([]models.BlogPost, int64, error)
	GetPostByID(id uint) (*models.BlogPost, error)
	GetPostBySlug(slug string, onlyPublished bool) (*models.BlogPost, error)
	CreatePost(post *models.BlogPost) error
	UpdatePost(post *models.BlogPost) error
	DeletePost(id uint) error
	CountPostSlug(slug string, excludeID *uint) (int64, error)

	ListComments(postID uint, onlyApproved bool) ([]models.BlogComment, error)
	GetCommentByID(id uint) (*models.BlogComment, error)
	CreateComment(comment *models.BlogComment) error
	ApproveComment(id uint) error
	DeleteComment(id uint) error
	DeleteCommentsByPost(postID uint) error
}

// GormBlogRepository is the GORM implementation.
type GormBlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a blog repository.
func NewBlogRepository(db *gorm.DB) *GormBlogRepository {
	return &GormBlogRepository{db: db}
}

// ListCategories returns every blog category.
func (r *GormBlogRepository) ListCategories() ([]models.BlogCategory, error) {
	var categories []models.BlogCategory
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID fetches one blog category, nil when missing.
func (r *GormBlogRepository) GetCategoryByID(id uint) (*models.BlogCategory, error) {
	var category models.BlogCategory
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// CreateCategory inserts a blog category.
func (r *GormBlogRepository) CreateCategory(category *models.BlogCategory) error {
	return r.db.Create(category).Error
}

// UpdateCategory saves a blog category.
func (r *GormBlogRepository) UpdateCategory(category *models.BlogCategory) error {
	return r.db.Save(category).Error
}

// DeleteCategory removes a blog category.
func (r *GormBlogRepository) DeleteCategory(id uint) error {
	return r.db.Delete(&models.BlogCategory{}, id).Error
}

// CountCategorySlug counts blog categories holding slug.
func (r *GormBlogRepository) CountCategorySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.BlogCategory{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountPostsInCategory counts posts attached to a blog category.
func (r *GormBlogRepository) CountPostsInCategory(categoryID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.BlogPost{}).Where("blog_category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListPosts returns posts matching the filter, newest first.
func (r *GormBlogRepository) ListPosts(filter BlogPostListFilter) ([]models.BlogPost, int64, error) {
	query := r.db.Model(&models.BlogPost{}).Preload("BlogCategory")
	if filter.OnlyPublished {
		query = query.Where("published = ?", true)
	}
	if filter.CategoryID > 0 {
		query = query.Where("blog_category_id = ?", filter.CategoryID)
	}
	if slug := strings.TrimSpace(filter.CategorySlug); slug != "" {
		query = query.Where("blog_category_id IN (SELECT id FROM blog_categories WHERE slug = ?)", slug)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR excerpt LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	} else {
		query = applyPagination(query, filter.Page, filter.PageSize)
	}

	var posts []models.BlogPost
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetPostByID fetches one post, nil when missing.
func (r *GormBlogRepository) GetPostByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.Preload("BlogCategory").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetPostBySlug fetches one post by slug, nil when missing.
func (r *GormBlogRepository) GetPostBySlug(slug string, onlyPublished bool) (*models.BlogPost, error) {
	query := r.db.Preload("BlogCategory").Where("slug = ?", slug)
	if onlyPublished {
		query = query.Where("published = ?", true)
	}
	var post models.BlogPost
	if err := query.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// CreatePost inserts a post.
func (r *GormBlogRepository) CreatePost(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// UpdatePost saves a post.
func (r *GormBlogRepository) UpdatePost(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// DeletePost removes a post.
func (r *GormBlogRepository) DeletePost(id uint) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}

// CountPostSlug counts posts holding slug.
func (r *GormBlogRepository) CountPostSlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.BlogPost{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListComments returns a post's comments, oldest first.
func (r *GormBlogRepository) ListComments(postID uint, onlyApproved bool) ([]models.BlogComment, error) {
	query := r.db.Where("post_id = ?", postID)
	if onlyApproved {
		query = query.Where("approved = ?", true)
	}
	var comments []models.BlogComment
	if err := query.Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetCommentByID fetches one comment, nil when missing.
func (r *GormBlogRepository) GetCommentByID(id uint) (*models.BlogComment, error) {
	var comment models.BlogComment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// CreateComment inserts a comment.
func (r *GormBlogRepository) CreateComment(comment *models.BlogComment) error {
	return r.db.Create(comment).Error
}

// ApproveComment marks a comment approved.
func (r *GormBlogRepository) ApproveComment(id uint) error {
	return r.db.Model(&models.BlogComment{}).Where("id = ?", id).Update("approved", true).Error
}

// DeleteComment removes a comment.
func (r *GormBlogRepository) DeleteComment(id uint) error {
	return r.db.Delete(&models.BlogComment{}, id).Error
}

// DeleteCommentsByPost removes every comment of a post.
func (r *GormBlogRepository) DeleteCommentsByPost(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.BlogComment{}).Error
}
