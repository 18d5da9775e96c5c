package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
)

// ContentRepository defines the interface for content item persistence
type ContentRepository interface {
	Create(ctx context.Context, item *domain.ContentItem) error
	FindByID(ctx context.Context, id uint64) (*domain.ContentItem, error)
	FindBySlug(ctx context.Context, kind domain.ContentKind, slug string) (*domain.ContentItem, error)
	List(ctx context.Context, page, limit int) ([]*domain.ContentItem, int64, error)
	Update(ctx context.Context, id uint64, patch *domain.ContentPatch) (*domain.ContentItem, error)
	Publish(ctx context.Context, id uint64) (*domain.ContentItem, error)
	Delete(ctx context.Context, id uint64) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, item *domain.ContentItem) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if isDuplicateKey(err) {
		// duplicate (kind, slug)
		return common.ErrConflict
	}
	return err
}

func (r *contentRepository) FindByID(ctx context.Context, id uint64) (*domain.ContentItem, error) {
	var item domain.ContentItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, common.ErrContentNotFound)
	}
	return &item, nil
}

func (r *contentRepository) FindBySlug(ctx context.Context, kind domain.ContentKind, slug string) (*domain.ContentItem, error) {
	var item domain.ContentItem
	err := r.db.WithContext(ctx).
		Where("kind = ? AND slug = ?", kind, slug).
		First(&item).Error
	if err != nil {
		return nil, translateError(err, common.ErrContentNotFound)
	}
	return &item, nil
}

func (r *contentRepository) List(ctx context.Context, page, limit int) ([]*domain.ContentItem, int64, error) {
	var items []*domain.ContentItem
	var total int64

	if err := r.db.WithContext(ctx).Model(&domain.ContentItem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("edited_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update applies a partial merge under an exclusive row lock: nil patch fields
// keep their stored value. Recording the resulting revision is the caller's
// responsibility (via the revision log).
func (r *contentRepository) Update(ctx context.Context, id uint64, patch *domain.ContentPatch) (*domain.ContentItem, error) {
	var item domain.ContentItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", id).Error; err != nil {
			return translateError(err, common.ErrContentNotFound)
		}
		patch.Apply(&item, time.Now())
		return tx.Model(&domain.ContentItem{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"slug":      item.Slug,
				"title":     item.Title,
				"body":      item.Body,
				"template":  item.Template,
				"edited_at": item.EditedAt,
			}).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, common.ErrConflict
		}
		return nil, err
	}
	return &item, nil
}

// Publish sets status=published and bumps edited_at. published_at is written
// only when previously unset; republishing never resets the original time.
func (r *contentRepository) Publish(ctx context.Context, id uint64) (*domain.ContentItem, error) {
	var item domain.ContentItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", id).Error; err != nil {
			return translateError(err, common.ErrContentNotFound)
		}
		item.MarkPublished(time.Now())
		return tx.Model(&domain.ContentItem{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":       item.Status,
				"edited_at":    item.EditedAt,
				"published_at": item.PublishedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the item together with its revisions and collaborator roster
// in one transaction. Revisions never outlive their item.
func (r *contentRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&domain.ContentItem{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrContentNotFound
		}
		if err := tx.Where("content_id = ?", id).Delete(&domain.Revision{}).Error; err != nil {
			return err
		}
		return tx.Where("content_id = ?", id).Delete(&domain.Collaborator{}).Error
	})
}
