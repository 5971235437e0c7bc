package admin

import (
	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/repository"
	"github.com/mercadoclone/api/internal/service"

	"github.com/gin-gonic/gin"
)

type createCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug" binding:"required"`
	Icon      string `json:"icon"`
	ParentID  *uint  `json:"parent_id"`
	SortOrder int    `json:"sort_order"`
}

type updateCategoryRequest struct {
	Name      *string `json:"name"`
	Slug      *string `json:"slug"`
	Icon      *string `json:"icon"`
	ParentID  *int    `json:"parent_id"`
	SortOrder *int    `json:"sort_order"`
}

type categoryRowPayload struct {
	repository.CategoryWithCount
	ParentName string `json:"parent_name,omitempty"`
}

// ListCategories returns all categories flat with product counts and
// resolved parent names.
func (h *Handler) ListCategories(c *gin.Context) {
	rows, names, err := h.CategoryService.ListWithProductCount()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	payload := make([]categoryRowPayload, 0, len(rows))
	for _, row := range rows {
		item := categoryRowPayload{CategoryWithCount: row}
		if row.ParentID != nil {
			item.ParentName = names[*row.ParentID]
		}
		payload = append(payload, item)
	}
	response.Success(c, payload)
}

// GetCategoryTree returns the category forest.
func (h *Handler) GetCategoryTree(c *gin.Context) {
	tree, err := h.CategoryService.Tree()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, tree)
}

// ListParentCategories returns root categories only.
func (h *Handler) ListParentCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListParents()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, categories)
}

// CreateCategory inserts a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	category, err := h.CategoryService.Create(service.CreateCategoryInput{
		Name:      req.Name,
		Slug:      req.Slug,
		Icon:      req.Icon,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, category)
}

// UpdateCategory applies a partial category update. Sending parent_id
// as zero or negative clears the parent.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	category, err := h.CategoryService.Update(id, service.UpdateCategoryInput{
		Name:      req.Name,
		Slug:      req.Slug,
		Icon:      req.Icon,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes a category without products or children.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}
