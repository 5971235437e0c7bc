package public

import (
	"strconv"
	"strings"

	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/repository"
	"github.com/mercadoclone/api/internal/service"

	"github.com/gin-gonic/gin"
)

type createCommentRequest struct {
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorEmail string `json:"author_email" binding:"required,email"`
	Content     string `json:"content" binding:"required"`
}

// GetBlogCategories returns every blog category.
func (h *Handler) GetBlogCategories(c *gin.Context) {
	categories, err := h.BlogService.ListCategories()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// GetBlogPosts returns published posts, optionally filtered by
// category slug.
func (h *Handler) GetBlogPosts(c *gin.Context) {
	filter := repository.BlogPostListFilter{
		CategorySlug:  strings.TrimSpace(c.Query("category")),
		Search:        strings.TrimSpace(c.Query("search")),
		OnlyPublished: true,
	}
	if raw := c.Query("limit"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			filter.Limit = value
		}
	}

	posts, _, err := h.BlogService.ListPosts(filter)
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, posts)
}

// GetBlogPost returns one published post by slug.
func (h *Handler) GetBlogPost(c *gin.Context) {
	post, err := h.BlogService.GetPublishedPost(c.Param("slug"))
	if err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, post)
}

// GetBlogComments returns a post's approved comments.
func (h *Handler) GetBlogComments(c *gin.Context) {
	comments, err := h.BlogService.ListApprovedComments(c.Param("slug"))
	if err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, comments)
}

// CreateBlogComment files a comment for moderation.
func (h *Handler) CreateBlogComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	comment, err := h.BlogService.CreateComment(c.Param("slug"), service.BlogCommentInput{
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
	})
	if err != nil {
		respondWithMappedError(c, err, blogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, comment)
}
