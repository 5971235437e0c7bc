package admin

import (
	"strconv"
	"strings"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/repository"
	"github.com/mercadoclone/api/internal/service"

	"github.com/gin-gonic/gin"
)

type blogCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type blogPostRequest struct {
	Title          string `json:"title" binding:"required"`
	Slug           string `json:"slug" binding:"required"`
	Excerpt        string `json:"excerpt"`
	Content        string `json:"content"`
	Image          string `json:"image"`
	BlogCategoryID *uint  `json:"blog_category_id"`
	Author         string `json:"author"`
	Published      bool   `json:"published"`
}

// ListBlogCategories returns all blog categories.
func (h *Handler) ListBlogCategories(c *gin.Context) {
	categories, err := h.BlogService.ListCategories()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// CreateBlogCategory inserts a blog category.
func (h *Handler) CreateBlogCategory(c *gin.Context) {
	var req blogCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	category, err := h.BlogService.CreateCategory(service.BlogCategoryInput{Name: req.Name, Slug: req.Slug})
	if err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, category)
}

// UpdateBlogCategory renames or reslugs a blog category.
func (h *Handler) UpdateBlogCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req blogCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	category, err := h.BlogService.UpdateCategory(id, service.BlogCategoryInput{Name: req.Name, Slug: req.Slug})
	if err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, category)
}

// DeleteBlogCategory removes a blog category.
func (h *Handler) DeleteBlogCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.BlogService.DeleteCategory(id); err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

// ListBlogPosts returns posts for the back office, drafts included.
func (h *Handler) ListBlogPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	filter := repository.BlogPostListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CategoryID = uint(id)
		}
	}

	posts, total, err := h.BlogService.ListPosts(filter)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, posts, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetBlogPost returns one post regardless of publication state.
func (h *Handler) GetBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.BlogService.GetPost(id)
	if err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, post)
}

// CreateBlogPost inserts a post. A post created as published gets its
// publication timestamp stamped immediately.
func (h *Handler) CreateBlogPost(c *gin.Context) {
	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	post, err := h.BlogService.CreatePost(blogPostInput(req))
	if err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, post)
}

// UpdateBlogPost replaces a post's content.
func (h *Handler) UpdateBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req blogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	post, err := h.BlogService.UpdatePost(id, blogPostInput(req))
	if err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, post)
}

// DeleteBlogPost removes a post and its comments.
func (h *Handler) DeleteBlogPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.BlogService.DeletePost(id); err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

// ListBlogPostComments returns every comment of a post for moderation.
func (h *Handler) ListBlogPostComments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	comments, err := h.BlogService.ListComments(id)
	if err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, comments)
}

// ApproveBlogComment marks a comment visible on the public site.
func (h *Handler) ApproveBlogComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.BlogService.ApproveComment(id); err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

// DeleteBlogComment removes a comment.
func (h *Handler) DeleteBlogComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.BlogService.DeleteComment(id); err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}

func blogPostInput(req blogPostRequest) service.BlogPostInput {
	return service.BlogPostInput{
		Title:          req.Title,
		Slug:           req.Slug,
		Excerpt:        req.Excerpt,
		Content:        req.Content,
		Image:          req.Image,
		BlogCategoryID: req.BlogCategoryID,
		Author:         req.Author,
		Published:      req.Published,
	}
}
