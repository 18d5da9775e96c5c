package service

import (
	"context"
	"errors"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
	"github.com/draftmark/draftmark-backend/internal/repository"
)

// AccessService answers view/edit/manage questions for one content item and
// one actor. Decisions are read-only; callers consult the gate before
// invoking any mutating operation, the mutating layers never re-check.
type AccessService interface {
	CanView(ctx context.Context, item *domain.ContentItem, actorID uint64) (bool, error)
	CanEdit(ctx context.Context, item *domain.ContentItem, actorID uint64) (bool, error)
	CanManageCollaborators(item *domain.ContentItem, actorID uint64) bool
}

type accessService struct {
	collabRepo repository.CollaboratorRepository
}

// NewAccessService creates a new AccessService
func NewAccessService(collabRepo repository.CollaboratorRepository) AccessService {
	return &accessService{collabRepo: collabRepo}
}

// CanView: owner-less items are universally viewable; otherwise the owner or
// any collaborator (either role) may view.
func (s *accessService) CanView(ctx context.Context, item *domain.ContentItem, actorID uint64) (bool, error) {
	if !item.Owned() || item.IsOwner(actorID) {
		return true, nil
	}
	if actorID == 0 {
		return false, nil
	}
	_, err := s.collabRepo.Find(ctx, item.ID, actorID)
	if errors.Is(err, common.ErrCollaboratorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CanEdit: owner-less items are universally editable; otherwise the owner or
// an Editor collaborator. Viewer does not grant edit.
func (s *accessService) CanEdit(ctx context.Context, item *domain.ContentItem, actorID uint64) (bool, error) {
	if !item.Owned() || item.IsOwner(actorID) {
		return true, nil
	}
	if actorID == 0 {
		return false, nil
	}
	collab, err := s.collabRepo.Find(ctx, item.ID, actorID)
	if errors.Is(err, common.ErrCollaboratorNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return collab.Role == domain.RoleEditor, nil
}

// CanManageCollaborators: only the owner; owner-less items have no roster.
func (s *accessService) CanManageCollaborators(item *domain.ContentItem, actorID uint64) bool {
	return item.IsOwner(actorID)
}
