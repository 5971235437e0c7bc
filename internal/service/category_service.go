package service

import (
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"
)

// CategoryService holds the category business rules, including the
// tree assembly the storefront navigation is built from.
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates a category service.
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryNode is one node of the category forest.
type CategoryNode struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Icon         string          `json:"icon"`
	ParentID     *uint           `json:"parent_id"`
	SortOrder    int             `json:"sort_order"`
	ProductCount int64           `json:"product_count"`
	Children     []*CategoryNode `json:"children"`
}

// CreateCategoryInput carries the fields of a new category.
type CreateCategoryInput struct {
	Name      string
	Slug      string
	Icon      string
	ParentID  *uint
	SortOrder int
}

// UpdateCategoryInput carries a partial category update. Nil fields
// are left untouched; ParentID uses int so callers can send zero or a
// negative value to clear the parent.
type UpdateCategoryInput struct {
	Name      *string
	Slug      *string
	Icon      *string
	ParentID  *int
	SortOrder *int
}

// List returns all categories flat.
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.List()
}

// ListWithProductCount returns all categories flat with counts and
// parent names resolved, for the back office.
func (s *CategoryService) ListWithProductCount() ([]repository.CategoryWithCount, map[uint]string, error) {
	rows, err := s.repo.ListWithProductCount()
	if err != nil {
		return nil, nil, err
	}
	names := make(map[uint]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}
	return rows, names, nil
}

// ListParents returns root categories only.
func (s *CategoryService) ListParents() ([]models.Category, error) {
	return s.repo.ListParents()
}

// Tree assembles the category forest in a single pass over an
// id-indexed arena. Rows with a parent that is absent from the result
// set are dropped; rows without a parent become roots. Input order is
// preserved within each children list.
func (s *CategoryService) Tree() ([]*CategoryNode, error) {
	rows, err := s.repo.ListWithProductCount()
	if err != nil {
		return nil, err
	}
	return BuildCategoryTree(rows), nil
}

// BuildCategoryTree converts flat category rows into a forest.
func BuildCategoryTree(rows []repository.CategoryWithCount) []*CategoryNode {
	index := make(map[uint]*CategoryNode, len(rows))
	nodes := make([]*CategoryNode, 0, len(rows))
	for _, row := range rows {
		node := &CategoryNode{
			ID:           row.ID,
			Name:         row.Name,
			Slug:         row.Slug,
			Icon:         row.Icon,
			ParentID:     row.ParentID,
			SortOrder:    row.SortOrder,
			ProductCount: row.ProductCount,
			Children:     []*CategoryNode{},
		}
		index[row.ID] = node
		nodes = append(nodes, node)
	}

	roots := []*CategoryNode{}
	for _, node := range nodes {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := index[*node.ParentID]
		if !ok {
			// orphaned parent reference, drop the subtree root
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return roots
}

// Get fetches one category.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create inserts a category after slug and parent validation.
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	count, err := s.repo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	if input.ParentID != nil {
		parent, err := s.repo.GetByID(*input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrParentNotFound
		}
	}

	category := models.Category{
		Name:      input.Name,
		Slug:      input.Slug,
		Icon:      input.Icon,
		ParentID:  input.ParentID,
		SortOrder: input.SortOrder,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update applies a partial category update as one UPDATE statement.
// Only the fields present in the input are written; an input with no
// fields at all is rejected before touching the database.
func (s *CategoryService) Update(id uint, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	values := map[string]interface{}{}
	if input.Name != nil {
		values["name"] = *input.Name
	}
	if input.Slug != nil {
		count, err := s.repo.CountBySlug(*input.Slug, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugExists
		}
		values["slug"] = *input.Slug
	}
	if input.Icon != nil {
		values["icon"] = *input.Icon
	}
	if input.SortOrder != nil {
		values["sort_order"] = *input.SortOrder
	}
	if input.ParentID != nil {
		switch {
		case *input.ParentID <= 0:
			values["parent_id"] = nil
		case uint(*input.ParentID) == id:
			return nil, ErrSelfParent
		default:
			parentID := uint(*input.ParentID)
			parent, err := s.repo.GetByID(parentID)
			if err != nil {
				return nil, err
			}
			if parent == nil {
				return nil, ErrParentNotFound
			}
			values["parent_id"] = parentID
		}
	}

	if len(values) == 0 {
		return nil, ErrNothingToUpdate
	}

	if err := s.repo.UpdateColumns(id, values); err != nil {
		return nil, err
	}
	return s.repo.GetByID(id)
}

// Delete removes a category unless products or subcategories still
// reference it.
func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	products, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if products > 0 {
		return ErrCategoryInUse
	}

	children, err := s.repo.CountChildren(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrCategoryHasChildren
	}
	return s.repo.Delete(id)
}
