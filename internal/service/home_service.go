package service

import (
	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/models"
	"github.com/mercadoclone/api/internal/repository"
)

// HomeService assembles the public homepage layout and exposes the
// section CRUD for the back office.
type HomeService struct {
	repo        repository.HomeRepository
	productRepo repository.ProductRepository
}

// NewHomeService creates a home service.
func NewHomeService(repo repository.HomeRepository, productRepo repository.ProductRepository) *HomeService {
	return &HomeService{repo: repo, productRepo: productRepo}
}

// CarouselSection is one carousel with its resolved products.
type CarouselSection struct {
	models.HomeCarousel
	Products []models.Product `json:"products"`
}

// HomeLayout is the full public homepage payload.
type HomeLayout struct {
	HeroSlides    []models.HeroSlide    `json:"hero_slides"`
	Banners       []models.HomeBanner   `json:"banners"`
	Carousels     []CarouselSection     `json:"carousels"`
	ContentBlocks []models.ContentBlock `json:"content_blocks"`
}

// Layout builds the homepage from the active sections, resolving each
// carousel's products by its kind.
func (s *HomeService) Layout() (*HomeLayout, error) {
	slides, err := s.repo.ListHeroSlides(true)
	if err != nil {
		return nil, err
	}
	banners, err := s.repo.ListBanners(true)
	if err != nil {
		return nil, err
	}
	carousels, err := s.repo.ListCarousels(true)
	if err != nil {
		return nil, err
	}
	blocks, err := s.repo.ListContentBlocks(true)
	if err != nil {
		return nil, err
	}

	sections := make([]CarouselSection, 0, len(carousels))
	for _, carousel := range carousels {
		products, err := s.resolveCarousel(carousel)
		if err != nil {
			return nil, err
		}
		sections = append(sections, CarouselSection{HomeCarousel: carousel, Products: products})
	}

	return &HomeLayout{
		HeroSlides:    slides,
		Banners:       banners,
		Carousels:     sections,
		ContentBlocks: blocks,
	}, nil
}

// resolveCarousel picks products per the carousel kind. Custom picks
// keep the configured order; missing ids are skipped.
func (s *HomeService) resolveCarousel(carousel models.HomeCarousel) ([]models.Product, error) {
	limit := carousel.Limit
	if limit <= 0 {
		limit = 10
	}

	switch carousel.Kind {
	case constants.CarouselKindCategory:
		if carousel.CategoryID == nil {
			return []models.Product{}, nil
		}
		products, _, err := s.productRepo.List(repository.ProductListFilter{
			CategoryID: *carousel.CategoryID,
			Sort:       constants.SortRelevance,
			Limit:      limit,
		})
		return products, err
	case constants.CarouselKindCustom:
		if len(carousel.ProductIDs) == 0 {
			return []models.Product{}, nil
		}
		products, err := s.productRepo.ListByIDs(carousel.ProductIDs)
		if err != nil {
			return nil, err
		}
		byID := make(map[uint]models.Product, len(products))
		for _, product := range products {
			byID[product.ID] = product
		}
		ordered := make([]models.Product, 0, len(carousel.ProductIDs))
		for _, id := range carousel.ProductIDs {
			if product, ok := byID[id]; ok {
				ordered = append(ordered, product)
			}
			if len(ordered) == limit {
				break
			}
		}
		return ordered, nil
	default:
		return s.productRepo.ListBestSellers(nil, nil, limit)
	}
}

// ListHeroSlides returns every slide for the back office.
func (s *HomeService) ListHeroSlides() ([]models.HeroSlide, error) {
	return s.repo.ListHeroSlides(false)
}

// CreateHeroSlide inserts a slide.
func (s *HomeService) CreateHeroSlide(slide *models.HeroSlide) error {
	return s.repo.CreateHeroSlide(slide)
}

// UpdateHeroSlide saves an existing slide.
func (s *HomeService) UpdateHeroSlide(id uint, apply func(*models.HeroSlide)) (*models.HeroSlide, error) {
	slide, err := s.repo.GetHeroSlide(id)
	if err != nil {
		return nil, err
	}
	if slide == nil {
		return nil, ErrNotFound
	}
	apply(slide)
	if err := s.repo.UpdateHeroSlide(slide); err != nil {
		return nil, err
	}
	return slide, nil
}

// DeleteHeroSlide removes a slide.
func (s *HomeService) DeleteHeroSlide(id uint) error {
	slide, err := s.repo.GetHeroSlide(id)
	if err != nil {
		return err
	}
	if slide == nil {
		return ErrNotFound
	}
	return s.repo.DeleteHeroSlide(id)
}

// ListBanners returns every banner for the back office.
func (s *HomeService) ListBanners() ([]models.HomeBanner, error) {
	return s.repo.ListBanners(false)
}

// CreateBanner inserts a banner.
func (s *HomeService) CreateBanner(banner *models.HomeBanner) error {
	return s.repo.CreateBanner(banner)
}

// UpdateBanner saves an existing banner.
func (s *HomeService) UpdateBanner(id uint, apply func(*models.HomeBanner)) (*models.HomeBanner, error) {
	banner, err := s.repo.GetBanner(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrNotFound
	}
	apply(banner)
	if err := s.repo.UpdateBanner(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// DeleteBanner removes a banner.
func (s *HomeService) DeleteBanner(id uint) error {
	banner, err := s.repo.GetBanner(id)
	if err != nil {
		return err
	}
	if banner == nil {
		return ErrNotFound
	}
	return s.repo.DeleteBanner(id)
}

// ListCarousels returns every carousel for the back office.
func (s *HomeService) ListCarousels() ([]models.HomeCarousel, error) {
	return s.repo.ListCarousels(false)
}

// CreateCarousel inserts a carousel after validating its kind.
func (s *HomeService) CreateCarousel(carousel *models.HomeCarousel) error {
	if !validCarouselKind(carousel.Kind) {
		return ErrInvalidStatus
	}
	return s.repo.CreateCarousel(carousel)
}

// UpdateCarousel saves an existing carousel.
func (s *HomeService) UpdateCarousel(id uint, apply func(*models.HomeCarousel)) (*models.HomeCarousel, error) {
	carousel, err := s.repo.GetCarousel(id)
	if err != nil {
		return nil, err
	}
	if carousel == nil {
		return nil, ErrNotFound
	}
	apply(carousel)
	if !validCarouselKind(carousel.Kind) {
		return nil, ErrInvalidStatus
	}
	if err := s.repo.UpdateCarousel(carousel); err != nil {
		return nil, err
	}
	return carousel, nil
}

// DeleteCarousel removes a carousel.
func (s *HomeService) DeleteCarousel(id uint) error {
	carousel, err := s.repo.GetCarousel(id)
	if err != nil {
		return err
	}
	if carousel == nil {
		return ErrNotFound
	}
	return s.repo.DeleteCarousel(id)
}

// ListContentBlocks returns every content block for the back office.
func (s *HomeService) ListContentBlocks() ([]models.ContentBlock, error) {
	return s.repo.ListContentBlocks(false)
}

// CreateContentBlock inserts a block.
func (s *HomeService) CreateContentBlock(block *models.ContentBlock) error {
	return s.repo.CreateContentBlock(block)
}

// UpdateContentBlock saves an existing block.
func (s *HomeService) UpdateContentBlock(id uint, apply func(*models.ContentBlock)) (*models.ContentBlock, error) {
	block, err := s.repo.GetContentBlock(id)
	if err != nil {
		return nil, err
	}
	if block == nil {
		return nil, ErrNotFound
	}
	apply(block)
	if err := s.repo.UpdateContentBlock(block); err != nil {
		return nil, err
	}
	return block, nil
}

// DeleteContentBlock removes a block.
func (s *HomeService) DeleteContentBlock(id uint) error {
	block, err := s.repo.GetContentBlock(id)
	if err != nil {
		return err
	}
	if block == nil {
		return ErrNotFound
	}
	return s.repo.DeleteContentBlock(id)
}

func validCarouselKind(kind string) bool {
	switch kind {
	case constants.CarouselKindBestSellers, constants.CarouselKindCategory, constants.CarouselKindCustom:
		return true
	}
	return false
}
