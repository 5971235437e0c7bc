package service

import (
	"strings"
	"time"

	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"
)

// BlogService holds the blog rules: categories, posts and moderated
// comments.
type BlogService struct {
	repo repository.BlogRepository
}

// NewBlogService creates a blog service.
func NewBlogService(repo repository.BlogRepository) *BlogService {
	return &BlogService{repo: repo}
}

// BlogCategoryInput carries a blog category create/update.
type BlogCategoryInput struct {
	Name string
	Slug string
}

// BlogPostInput carries a blog post create/update.
type BlogPostInput struct {
	Title          string
	Slug           string
	Excerpt        string
	Content        string
	Image          string
	BlogCategoryID *uint
	Author         string
	Published      bool
}

// BlogCommentInput carries a reader comment.
type BlogCommentInput struct {
	AuthorName  string
	AuthorEmail string
	Content     string
}

// ListCategories returns every blog category.
func (s *BlogService) ListCategories() ([]models.BlogCategory, error) {
	return s.repo.ListCategories()
}

// CreateCategory inserts a blog category.
func (s *BlogService) CreateCategory(input BlogCategoryInput) (*models.BlogCategory, error) {
	count, err := s.repo.CountCategorySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category := models.BlogCategory{
		Name: strings.TrimSpace(input.Name),
		Slug: input.Slug,
	}
	if err := s.repo.CreateCategory(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory saves a blog category.
func (s *BlogService) UpdateCategory(id uint, input BlogCategoryInput) (*models.BlogCategory, error) {
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	count, err := s.repo.CountCategorySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	category.Name = strings.TrimSpace(input.Name)
	category.Slug = input.Slug
	if err := s.repo.UpdateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a blog category; posts keep working with a
// cleared category reference, so only existence is checked.
func (s *BlogService) DeleteCategory(id uint) error {
	category, err := s.repo.GetCategoryByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.repo.DeleteCategory(id)
}

// ListPosts returns posts matching the filter.
func (s *BlogService) ListPosts(filter repository.BlogPostListFilter) ([]models.BlogPost, int64, error) {
	return s.repo.ListPosts(filter)
}

// GetPublishedPost fetches a published post by slug.
func (s *BlogService) GetPublishedPost(slug string) (*models.BlogPost, error) {
	post, err := s.repo.GetPostBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// GetPost fetches any post by id, for the back office.
func (s *BlogService) GetPost(id uint) (*models.BlogPost, error) {
	post, err := s.repo.GetPostByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// CreatePost inserts a post, stamping PublishedAt when it goes out
// published.
func (s *BlogService) CreatePost(input BlogPostInput) (*models.BlogPost, error) {
	count, err := s.repo.CountPostSlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	post := models.BlogPost{
		Title:          input.Title,
		Slug:           input.Slug,
		Excerpt:        input.Excerpt,
		Content:        input.Content,
		Image:          input.Image,
		BlogCategoryID: input.BlogCategoryID,
		Author:         input.Author,
		Published:      input.Published,
	}
	if input.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.repo.CreatePost(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost saves a post, stamping PublishedAt on the transition to
// published.
func (s *BlogService) UpdatePost(id uint, input BlogPostInput) (*models.BlogPost, error) {
	post, err := s.repo.GetPostByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	count, err := s.repo.CountPostSlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	if input.Published && !post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	post.Title = input.Title
	post.Slug = input.Slug
	post.Excerpt = input.Excerpt
	post.Content = input.Content
	post.Image = input.Image
	post.BlogCategoryID = input.BlogCategoryID
	post.Author = input.Author
	post.Published = input.Published

	if err := s.repo.UpdatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post with its comments.
func (s *BlogService) DeletePost(id uint) error {
	post, err := s.repo.GetPostByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if err := s.repo.DeleteCommentsByPost(id); err != nil {
		return err
	}
	return s.repo.DeletePost(id)
}

// ListApprovedComments returns a published post's approved comments.
func (s *BlogService) ListApprovedComments(slug string) ([]models.BlogComment, error) {
	post, err := s.GetPublishedPost(slug)
	if err != nil {
		return nil, err
	}
	return s.repo.ListComments(post.ID, true)
}

// ListComments returns all of a post's comments for moderation.
func (s *BlogService) ListComments(postID uint) ([]models.BlogComment, error) {
	return s.repo.ListComments(postID, false)
}

// CreateComment files a reader comment for moderation on a published
// post.
func (s *BlogService) CreateComment(slug string, input BlogCommentInput) (*models.BlogComment, error) {
	post, err := s.GetPublishedPost(slug)
	if err != nil {
		return nil, err
	}

	comment := models.BlogComment{
		PostID:      post.ID,
		AuthorName:  strings.TrimSpace(input.AuthorName),
		AuthorEmail: strings.TrimSpace(input.AuthorEmail),
		Content:     input.Content,
	}
	if err := s.repo.CreateComment(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ApproveComment publishes a pending comment.
func (s *BlogService) ApproveComment(id uint) error {
	comment, err := s.repo.GetCommentByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	return s.repo.ApproveComment(id)
}

// DeleteComment removes a comment.
func (s *BlogService) DeleteComment(id uint) error {
	comment, err := s.repo.GetCommentByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	return s.repo.DeleteComment(id)
}
