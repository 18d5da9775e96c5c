package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
)

// TemplateRepository defines the interface for template persistence
type TemplateRepository interface {
	Create(ctx context.Context, tmpl *domain.Template) error
	FindByName(ctx context.Context, name string) (*domain.Template, error)
	List(ctx context.Context) ([]*domain.Template, error)
	Delete(ctx context.Context, name string) error
}

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new TemplateRepository
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(ctx context.Context, tmpl *domain.Template) error {
	err := r.db.WithContext(ctx).Create(tmpl).Error
	if isDuplicateKey(err) {
		// duplicate template name
		return common.ErrConflict
	}
	return err
}

func (r *templateRepository) FindByName(ctx context.Context, name string) (*domain.Template, error) {
	var tmpl domain.Template
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&tmpl).Error
	if err != nil {
		return nil, translateError(err, common.ErrTemplateNotFound)
	}
	return &tmpl, nil
}

func (r *templateRepository) List(ctx context.Context) ([]*domain.Template, error) {
	var tmpls []*domain.Template
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tmpls).Error
	return tmpls, err
}

func (r *templateRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&domain.Template{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrTemplateNotFound
	}
	return nil
}
