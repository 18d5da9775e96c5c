package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
)

// SettingsRepository owns the singleton system-settings row. The first-admin
// claim is a transactional compare-and-set guarded by the same exclusive-row-
// lock technique the revision log uses, so it is portable across stores.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
	// ClaimFirstAdmin promotes userID to admin iff no admin was ever
	// assigned. Returns true when this call won the claim.
	ClaimFirstAdmin(ctx context.Context, userID uint64) (bool, error)
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*domain.SystemSettings, error) {
	var settings domain.SystemSettings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", domain.SystemSettingsID).Error
	if err != nil {
		return nil, translateError(err, common.ErrNotFound)
	}
	return &settings, nil
}

func (r *settingsRepository) ClaimFirstAdmin(ctx context.Context, userID uint64) (bool, error) {
	won := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var settings domain.SystemSettings
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&settings, "id = ?", domain.SystemSettingsID).Error; err != nil {
			return translateError(err, common.ErrNotFound)
		}
		if settings.AdminAssigned {
			return nil
		}

		if err := tx.Model(&domain.SystemSettings{}).
			Where("id = ?", domain.SystemSettingsID).
			Updates(map[string]interface{}{
				"admin_assigned": true,
				"first_admin_id": userID,
			}).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.User{}).
			Where("id = ?", userID).
			Update("is_admin", true).Error; err != nil {
			return err
		}
		won = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return won, nil
}
