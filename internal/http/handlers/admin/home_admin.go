package admin

import (
	"github.com/mercadoclone/api/internal/cache"
	"github.com/mercadoclone/api/internal/http/handlers/shared"
	"github.com/mercadoclone/api/internal/http/response"
	"github.com/mercadoclone/api/internal/models"

	"github.com/gin-gonic/gin"
)

type heroSlideRequest struct {
	Title      *string `json:"title"`
	Subtitle   *string `json:"subtitle"`
	Image      *string `json:"image"`
	ButtonText *string `json:"button_text"`
	ButtonLink *string `json:"button_link"`
	Active     *bool   `json:"active"`
	SortOrder  *int    `json:"sort_order"`
}

type homeBannerRequest struct {
	Title     *string `json:"title"`
	Image     *string `json:"image"`
	Link      *string `json:"link"`
	Position  *string `json:"position"`
	Active    *bool   `json:"active"`
	SortOrder *int    `json:"sort_order"`
}

type homeCarouselRequest struct {
	Title      *string           `json:"title"`
	Subtitle   *string           `json:"subtitle"`
	Kind       *string           `json:"kind"`
	CategoryID *uint             `json:"category_id"`
	ProductIDs *models.UintArray `json:"product_ids"`
	Limit      *int              `json:"limit"`
	Active     *bool             `json:"active"`
	SortOrder  *int              `json:"sort_order"`
}

type contentBlockRequest struct {
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	Image     *string `json:"image"`
	Link      *string `json:"link"`
	Kind      *string `json:"kind"`
	Active    *bool   `json:"active"`
	SortOrder *int    `json:"sort_order"`
}

// invalidateHomeLayout drops the cached homepage aggregate after a
// layout write. Cache trouble is logged, never surfaced.
func (h *Handler) invalidateHomeLayout(c *gin.Context) {
	if err := cache.InvalidateHomeLayout(c.Request.Context()); err != nil {
		shared.RequestLog(c).Warnw("home layout cache invalidation failed", "error", err)
	}
}

// ListHeroSlides returns every hero slide, inactive included.
func (h *Handler) ListHeroSlides(c *gin.Context) {
	slides, err := h.HomeService.ListHeroSlides()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, slides)
}

// CreateHeroSlide inserts a hero slide.
func (h *Handler) CreateHeroSlide(c *gin.Context) {
	var req heroSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	slide := models.HeroSlide{Active: true}
	applyHeroSlide(&slide, req)
	if err := h.HomeService.CreateHeroSlide(&slide); err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, slide)
}

// UpdateHeroSlide applies a partial hero slide update.
func (h *Handler) UpdateHeroSlide(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req heroSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	slide, err := h.HomeService.UpdateHeroSlide(id, func(s *models.HeroSlide) {
		applyHeroSlide(s, req)
	})
	if err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, slide)
}

// DeleteHeroSlide removes a hero slide.
func (h *Handler) DeleteHeroSlide(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.HomeService.DeleteHeroSlide(id); err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, nil)
}

// ListHomeBanners returns every banner, inactive included.
func (h *Handler) ListHomeBanners(c *gin.Context) {
	banners, err := h.HomeService.ListBanners()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, banners)
}

// CreateHomeBanner inserts a banner.
func (h *Handler) CreateHomeBanner(c *gin.Context) {
	var req homeBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	banner := models.HomeBanner{Active: true}
	applyHomeBanner(&banner, req)
	if err := h.HomeService.CreateBanner(&banner); err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, banner)
}

// UpdateHomeBanner applies a partial banner update.
func (h *Handler) UpdateHomeBanner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req homeBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	banner, err := h.HomeService.UpdateBanner(id, func(b *models.HomeBanner) {
		applyHomeBanner(b, req)
	})
	if err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, banner)
}

// DeleteHomeBanner removes a banner.
func (h *Handler) DeleteHomeBanner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.HomeService.DeleteBanner(id); err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, nil)
}

// ListHomeCarousels returns every carousel, inactive included.
func (h *Handler) ListHomeCarousels(c *gin.Context) {
	carousels, err := h.HomeService.ListCarousels()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, carousels)
}

// CreateHomeCarousel inserts a product carousel.
func (h *Handler) CreateHomeCarousel(c *gin.Context) {
	var req homeCarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	carousel := models.HomeCarousel{Active: true}
	applyHomeCarousel(&carousel, req)
	if err := h.HomeService.CreateCarousel(&carousel); err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, carousel)
}

// UpdateHomeCarousel applies a partial carousel update.
func (h *Handler) UpdateHomeCarousel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req homeCarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	carousel, err := h.HomeService.UpdateCarousel(id, func(cr *models.HomeCarousel) {
		applyHomeCarousel(cr, req)
	})
	if err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, carousel)
}

// DeleteHomeCarousel removes a carousel.
func (h *Handler) DeleteHomeCarousel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.HomeService.DeleteCarousel(id); err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, nil)
}

// ListContentBlocks returns every content block, inactive included.
func (h *Handler) ListContentBlocks(c *gin.Context) {
	blocks, err := h.HomeService.ListContentBlocks()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, blocks)
}

// CreateContentBlock inserts a content block.
func (h *Handler) CreateContentBlock(c *gin.Context) {
	var req contentBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	block := models.ContentBlock{Active: true}
	applyContentBlock(&block, req)
	if err := h.HomeService.CreateContentBlock(&block); err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, block)
}

// UpdateContentBlock applies a partial content block update.
func (h *Handler) UpdateContentBlock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req contentBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	block, err := h.HomeService.UpdateContentBlock(id, func(b *models.ContentBlock) {
		applyContentBlock(b, req)
	})
	if err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, block)
}

// DeleteContentBlock removes a content block.
func (h *Handler) DeleteContentBlock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.HomeService.DeleteContentBlock(id); err != nil {
		respondWithMappedError(c, err, homeErrorRules, response.CodeInternal, "error.internal")
		return
	}
	h.invalidateHomeLayout(c)
	response.Success(c, nil)
}

func applyHeroSlide(slide *models.HeroSlide, req heroSlideRequest) {
	if req.Title != nil {
		slide.Title = *req.Title
	}
	if req.Subtitle != nil {
		slide.Subtitle = *req.Subtitle
	}
	if req.Image != nil {
		slide.Image = *req.Image
	}
	if req.ButtonText != nil {
		slide.ButtonText = *req.ButtonText
	}
	if req.ButtonLink != nil {
		slide.ButtonLink = *req.ButtonLink
	}
	if req.Active != nil {
		slide.Active = *req.Active
	}
	if req.SortOrder != nil {
		slide.SortOrder = *req.SortOrder
	}
}

func applyHomeBanner(banner *models.HomeBanner, req homeBannerRequest) {
	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.Image != nil {
		banner.Image = *req.Image
	}
	if req.Link != nil {
		banner.Link = *req.Link
	}
	if req.Position != nil {
		banner.Position = *req.Position
	}
	if req.Active != nil {
		banner.Active = *req.Active
	}
	if req.SortOrder != nil {
		banner.SortOrder = *req.SortOrder
	}
}

func applyHomeCarousel(carousel *models.HomeCarousel, req homeCarouselRequest) {
	if req.Title != nil {
		carousel.Title = *req.Title
	}
	if req.Subtitle != nil {
		carousel.Subtitle = *req.Subtitle
	}
	if req.Kind != nil {
		carousel.Kind = *req.Kind
	}
	if req.CategoryID != nil {
		carousel.CategoryID = req.CategoryID
	}
	if req.ProductIDs != nil {
		carousel.ProductIDs = *req.ProductIDs
	}
	if req.Limit != nil {
		carousel.Limit = *req.Limit
	}
	if req.Active != nil {
		carousel.Active = *req.Active
	}
	if req.SortOrder != nil {
		carousel.SortOrder = *req.SortOrder
	}
}

func applyContentBlock(block *models.ContentBlock, req contentBlockRequest) {
	if req.Title != nil {
		block.Title = *req.Title
	}
	if req.Body != nil {
		block.Body = *req.Body
	}
	if req.Image != nil {
		block.Image = *req.Image
	}
	if req.Link != nil {
		block.Link = *req.Link
	}
	if req.Kind != nil {
		block.Kind = *req.Kind
	}
	if req.Active != nil {
		block.Active = *req.Active
	}
	if req.SortOrder != nil {
		block.SortOrder = *req.SortOrder
	}
}
