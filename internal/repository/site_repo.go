package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
)

// SiteRepository defines the interface for site persistence
type SiteRepository interface {
	Create(ctx context.Context, site *domain.Site) error
	FindByID(ctx context.Context, id string) (*domain.Site, error)
	List(ctx context.Context) ([]*domain.Site, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type siteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a new SiteRepository
func NewSiteRepository(db *gorm.DB) SiteRepository {
	return &siteRepository{db: db}
}

func (r *siteRepository) Create(ctx context.Context, site *domain.Site) error {
	err := r.db.WithContext(ctx).Create(site).Error
	if isDuplicateKey(err) {
		// subdomain already taken
		return common.ErrConflict
	}
	return err
}

func (r *siteRepository) FindByID(ctx context.Context, id string) (*domain.Site, error) {
	var site domain.Site
	err := r.db.WithContext(ctx).First(&site, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, common.ErrSiteNotFound)
	}
	return &site, nil
}

func (r *siteRepository) List(ctx context.Context) ([]*domain.Site, error) {
	var sites []*domain.Site
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&sites).Error
	return sites, err
}

func (r *siteRepository) SetActive(ctx context.Context, id string, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Site{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrSiteNotFound
	}
	return nil
}

func (r *siteRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&domain.Site{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrSiteNotFound
	}
	return nil
}
