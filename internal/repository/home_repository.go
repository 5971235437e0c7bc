package repository

import (
	"errors"

	"github.com/mercadoclone/api/internal/models"

	"gorm.io/gorm"
)

// HomeRepository is the homepage layout data access interface. The
// four section tables share the same CRUD shape.
type HomeRepository interface {
	ListHeroSlides(onlyActive bool) ([]models.HeroSlide, error)
	GetHeroSlide(id uint) (*models.HeroSlide, error)
	CreateHeroSlide(slide *models.HeroSlide) error
	UpdateHeroSlide(slide *models.HeroSlide) error
	DeleteHeroSlide(id uint) error

	ListBanners(onlyActive bool) ([]models.HomeBanner, error)
	GetBanner(id uint) (*models.HomeBanner, error)
	CreateBanner(banner *models.HomeBanner) error
	UpdateBanner(banner *models.HomeBanner) error
	DeleteBanner(id uint) error

	ListCarousels(onlyActive bool) ([]models.HomeCarousel, error)
	GetCarousel(id uint) (*models.HomeCarousel, error)
	CreateCarousel(carousel *models.HomeCarousel) error
	UpdateCarousel(carousel *models.HomeCarousel) error
	DeleteCarousel(id uint) error

	ListContentBlocks(onlyActive bool) ([]models.ContentBlock, error)
	GetContentBlock(id uint) (*models.ContentBlock, error)
	CreateContentBlock(block *models.ContentBlock) error
	UpdateContentBlock(block *models.ContentBlock) error
	DeleteContentBlock(id uint) error
}

// GormHomeRepository is the GORM implementation.
type GormHomeRepository struct {
	db *gorm.DB
}

// NewHomeRepository creates a homepage layout repository.
func NewHomeRepository(db *gorm.DB) *GormHomeRepository {
	return &GormHomeRepository{db: db}
}

func (r *GormHomeRepository) sectionQuery(onlyActive bool) *gorm.DB {
	query := r.db.Order("sort_order ASC, id ASC")
	if onlyActive {
		query = query.Where("active = ?", true)
	}
	return query
}

// ListHeroSlides returns hero slides in display order.
func (r *GormHomeRepository) ListHeroSlides(onlyActive bool) ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	if err := r.sectionQuery(onlyActive).Find(&slides).Error; err != nil {
		return nil, err
	}
	return slides, nil
}

// GetHeroSlide fetches one slide, nil when missing.
func (r *GormHomeRepository) GetHeroSlide(id uint) (*models.HeroSlide, error) {
	var slide models.HeroSlide
	if err := r.db.First(&slide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slide, nil
}

// CreateHeroSlide inserts a slide.
func (r *GormHomeRepository) CreateHeroSlide(slide *models.HeroSlide) error {
	return r.db.Create(slide).Error
}

// UpdateHeroSlide saves a slide.
func (r *GormHomeRepository) UpdateHeroSlide(slide *models.HeroSlide) error {
	return r.db.Save(slide).Error
}

// DeleteHeroSlide removes a slide.
func (r *GormHomeRepository) DeleteHeroSlide(id uint) error {
	return r.db.Delete(&models.HeroSlide{}, id).Error
}

// ListBanners returns banners in display order.
func (r *GormHomeRepository) ListBanners(onlyActive bool) ([]models.HomeBanner, error) {
	var banners []models.HomeBanner
	if err := r.sectionQuery(onlyActive).Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// GetBanner fetches one banner, nil when missing.
func (r *GormHomeRepository) GetBanner(id uint) (*models.HomeBanner, error) {
	var banner models.HomeBanner
	if err := r.db.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &banner, nil
}

// CreateBanner inserts a banner.
func (r *GormHomeRepository) CreateBanner(banner *models.HomeBanner) error {
	return r.db.Create(banner).Error
}

// UpdateBanner saves a banner.
func (r *GormHomeRepository) UpdateBanner(banner *models.HomeBanner) error {
	return r.db.Save(banner).Error
}

// DeleteBanner removes a banner.
func (r *GormHomeRepository) DeleteBanner(id uint) error {
	return r.db.Delete(&models.HomeBanner{}, id).Error
}

// ListCarousels returns carousels in display order.
func (r *GormHomeRepository) ListCarousels(onlyActive bool) ([]models.HomeCarousel, error) {
	var carousels []models.HomeCarousel
	if err := r.sectionQuery(onlyActive).Find(&carousels).Error; err != nil {
		return nil, err
	}
	return carousels, nil
}

// GetCarousel fetches one carousel, nil when missing.
func (r *GormHomeRepository) GetCarousel(id uint) (*models.HomeCarousel, error) {
	var carousel models.HomeCarousel
	if err := r.db.First(&carousel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &carousel, nil
}

// CreateCarousel inserts a carousel.
func (r *GormHomeRepository) CreateCarousel(carousel *models.HomeCarousel) error {
	return r.db.Create(carousel).Error
}

// UpdateCarousel saves a carousel.
func (r *GormHomeRepository) UpdateCarousel(carousel *models.HomeCarousel) error {
	return r.db.Save(carousel).Error
}

// DeleteCarousel removes a carousel.
func (r *GormHomeRepository) DeleteCarousel(id uint) error {
	return r.db.Delete(&models.HomeCarousel{}, id).Error
}

// ListContentBlocks returns content blocks in display order.
func (r *GormHomeRepository) ListContentBlocks(onlyActive bool) ([]models.ContentBlock, error) {
	var blocks []models.ContentBlock
	if err := r.sectionQuery(onlyActive).Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// GetContentBlock fetches one block, nil when missing.
func (r *GormHomeRepository) GetContentBlock(id uint) (*models.ContentBlock, error) {
	var block models.ContentBlock
	if err := r.db.First(&block, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &block, nil
}

// CreateContentBlock inserts a block.
func (r *GormHomeRepository) CreateContentBlock(block *models.ContentBlock) error {
	return r.db.Create(block).Error
}

// UpdateContentBlock saves a block.
func (r *GormHomeRepository) UpdateContentBlock(block *models.ContentBlock) error {
	return r.db.Save(block).Error
}

// DeleteContentBlock removes a block.
func (r *GormHomeRepository) DeleteContentBlock(id uint) error {
	return r.db.Delete(&models.ContentBlock{}, id).Error
}
