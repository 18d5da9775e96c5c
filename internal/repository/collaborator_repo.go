package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
)

// CollaboratorRepository defines the interface for roster persistence
type CollaboratorRepository interface {
	Upsert(ctx context.Context, collab *domain.Collaborator) error
	Find(ctx context.Context, contentID, userID uint64) (*domain.Collaborator, error)
	ListByContent(ctx context.Context, contentID uint64) ([]*domain.Collaborator, error)
	Remove(ctx context.Context, contentID, userID uint64) error
}

type collaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a new CollaboratorRepository
func NewCollaboratorRepository(db *gorm.DB) CollaboratorRepository {
	return &collaboratorRepository{db: db}
}

// Upsert inserts the roster row or, when (content_id, user_id) already
// exists, updates the role and inviter.
func (r *collaboratorRepository) Upsert(ctx context.Context, collab *domain.Collaborator) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "invited_by"}),
	}).Create(collab).Error
}

func (r *collaboratorRepository) Find(ctx context.Context, contentID, userID uint64) (*domain.Collaborator, error) {
	var collab domain.Collaborator
	err := r.db.WithContext(ctx).
		Where("content_id = ? AND user_id = ?", contentID, userID).
		First(&collab).Error
	if err != nil {
		return nil, translateError(err, common.ErrCollaboratorNotFound)
	}
	return &collab, nil
}

func (r *collaboratorRepository) ListByContent(ctx context.Context, contentID uint64) ([]*domain.Collaborator, error) {
	var collabs []*domain.Collaborator
	err := r.db.WithContext(ctx).
		Where("content_id = ?", contentID).
		Order("created_at DESC").
		Find(&collabs).Error
	return collabs, err
}

func (r *collaboratorRepository) Remove(ctx context.Context, contentID, userID uint64) error {
	result := r.db.WithContext(ctx).
		Where("content_id = ? AND user_id = ?", contentID, userID).
		Delete(&domain.Collaborator{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrCollaboratorNotFound
	}
	return nil
}
