package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
)

// RevisionRepository is the append-only revision log plus the current-pointer
// operations built on it. Every mutating method is one transaction against one
// item: begin → exclusive row lock → read → conditional truncate → write →
// commit. Concurrent calls on the same item serialize on the row lock, calls
// on different items never contend.
type RevisionRepository interface {
	// EnsureInitial lazily bootstraps rev 1 for items that predate the log.
	// Idempotent; returns max(current_rev, 1).
	EnsureInitial(ctx context.Context, contentID uint64, actorID *uint64) (int64, error)
	// Record appends a snapshot of the item's current fields after a
	// content-mutating write, discarding any redo branch first.
	Record(ctx context.Context, contentID uint64, actorID *uint64) (int64, error)
	// List returns bodyless revision metadata, newest first. limit must be
	// pre-clamped by the caller.
	List(ctx context.Context, contentID uint64, limit int) ([]domain.RevisionMeta, error)
	Get(ctx context.Context, contentID uint64, rev int64) (*domain.Revision, error)
	// Restore overwrites the item's editable fields from the target revision
	// and moves the current pointer there. No new rows are created.
	Restore(ctx context.Context, contentID uint64, rev int64) (*domain.ContentItem, error)
	// Undo and Redo carry the actor so a rev-1 snapshot lazily created on a
	// never-bootstrapped item keeps its attribution.
	Undo(ctx context.Context, contentID uint64, actorID *uint64) (*domain.ContentItem, error)
	Redo(ctx context.Context, contentID uint64, actorID *uint64) (*domain.ContentItem, error)
}

type revisionRepository struct {
	db *gorm.DB
}

// NewRevisionRepository creates a new RevisionRepository
func NewRevisionRepository(db *gorm.DB) RevisionRepository {
	return &revisionRepository{db: db}
}

// lockItem loads the item under an exclusive row lock for the duration of tx.
func lockItem(tx *gorm.DB, contentID uint64) (*domain.ContentItem, error) {
	var item domain.ContentItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, "id = ?", contentID).Error
	if err != nil {
		return nil, translateError(err, common.ErrContentNotFound)
	}
	return &item, nil
}

// bootstrap guarantees rev 1 exists for a locked item: if missing, the item's
// current field values become rev 1; a pointer below 1 is raised to 1. The
// absence of rev 1 is normal state for pre-log items, not a fault.
func bootstrap(tx *gorm.DB, item *domain.ContentItem, actorID *uint64) error {
	var first domain.Revision
	err := tx.Where("content_id = ? AND rev = ?", item.ID, 1).First(&first).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := tx.Create(domain.Snapshot(item, 1, actorID)).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if item.CurrentRev < 1 {
		item.CurrentRev = 1
		return tx.Model(&domain.ContentItem{}).
			Where("id = ?", item.ID).
			Update("current_rev", 1).Error
	}
	return nil
}

func (r *revisionRepository) EnsureInitial(ctx context.Context, contentID uint64, actorID *uint64) (int64, error) {
	var rev int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := lockItem(tx, contentID)
		if err != nil {
			return err
		}
		if err := bootstrap(tx, item, actorID); err != nil {
			return err
		}
		rev = item.CurrentRev
		return nil
	})
	if err != nil {
		return 0, err
	}
	return rev, nil
}

func (r *revisionRepository) Record(ctx context.Context, contentID uint64, actorID *uint64) (int64, error) {
	var newRev int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := lockItem(tx, contentID)
		if err != nil {
			return err
		}
		if err := bootstrap(tx, item, actorID); err != nil {
			return err
		}

		// A fresh edit invalidates any future that existed before an undo:
		// drop every revision above the pointer. Truncated branches are gone
		// for good, there is no archive.
		if err := tx.Where("content_id = ? AND rev > ?", item.ID, item.CurrentRev).
			Delete(&domain.Revision{}).Error; err != nil {
			return err
		}

		next, err := domain.NextRev(item.CurrentRev)
		if err != nil {
			return err
		}
		if err := tx.Create(domain.Snapshot(item, next, actorID)).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.ContentItem{}).
			Where("id = ?", item.ID).
			Update("current_rev", next).Error; err != nil {
			return err
		}
		newRev = next
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newRev, nil
}

func (r *revisionRepository) List(ctx context.Context, contentID uint64, limit int) ([]domain.RevisionMeta, error) {
	var metas []domain.RevisionMeta
	err := r.db.WithContext(ctx).
		Model(&domain.Revision{}).
		Select("rev", "title", "status", "edited_by", "created_at").
		Where("content_id = ?", contentID).
		Order("rev DESC").
		Limit(limit).
		Find(&metas).Error
	if err != nil {
		return nil, err
	}
	return metas, nil
}

func (r *revisionRepository) Get(ctx context.Context, contentID uint64, rev int64) (*domain.Revision, error) {
	var revision domain.Revision
	err := r.db.WithContext(ctx).
		Where("content_id = ? AND rev = ?", contentID, rev).
		First(&revision).Error
	if err != nil {
		return nil, translateError(err, common.ErrRevisionNotFound)
	}
	return &revision, nil
}

// restoreLocked materializes the target revision as the item's live state.
// item must be locked by the surrounding transaction. published_at stays
// untouched: restoring a draft snapshot never un-publishes the marker.
func restoreLocked(tx *gorm.DB, item *domain.ContentItem, rev int64) error {
	var snap domain.Revision
	err := tx.Where("content_id = ? AND rev = ?", item.ID, rev).First(&snap).Error
	if err != nil {
		return translateError(err, common.ErrRevisionNotFound)
	}

	snap.RestoreInto(item, time.Now())
	return tx.Model(&domain.ContentItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"title":       item.Title,
			"slug":        item.Slug,
			"body":        item.Body,
			"template":    item.Template,
			"status":      item.Status,
			"current_rev": item.CurrentRev,
			"edited_at":   item.EditedAt,
		}).Error
}

func (r *revisionRepository) Restore(ctx context.Context, contentID uint64, rev int64) (*domain.ContentItem, error) {
	var item *domain.ContentItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		item, err = lockItem(tx, contentID)
		if err != nil {
			return err
		}
		return restoreLocked(tx, item, rev)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *revisionRepository) Undo(ctx context.Context, contentID uint64, actorID *uint64) (*domain.ContentItem, error) {
	var item *domain.ContentItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		item, err = lockItem(tx, contentID)
		if err != nil {
			return err
		}
		// never-bootstrapped items get their rev 1 here, so the floor
		// invariant holds on every exit path
		if err := bootstrap(tx, item, actorID); err != nil {
			return err
		}
		return restoreLocked(tx, item, domain.UndoTarget(item.CurrentRev))
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *revisionRepository) Redo(ctx context.Context, contentID uint64, actorID *uint64) (*domain.ContentItem, error) {
	var item *domain.ContentItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		item, err = lockItem(tx, contentID)
		if err != nil {
			return err
		}
		if err := bootstrap(tx, item, actorID); err != nil {
			return err
		}

		next, err := domain.NextRev(item.CurrentRev)
		if err != nil {
			// pointer at the integer ceiling: nothing can exist beyond it
			return nil
		}
		err = restoreLocked(tx, item, next)
		if errors.Is(err, common.ErrRevisionNotFound) {
			// at max_rev, or the forward branch was truncated by a later
			// edit: redo is a no-op, the item stays as it is
			return nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
