package service

import (
	"context"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
	"github.com/draftmark/draftmark-backend/internal/repository"
)

// CollaboratorService handles roster business logic. The manage-permission
// check belongs to the caller (the gate); this layer enforces the structural
// rules: invites resolve an email to a known user, and owner-less items
// cannot carry a roster.
type CollaboratorService interface {
	Add(ctx context.Context, actorID uint64, contentID uint64, req *domain.AddCollaboratorRequest) (*domain.Collaborator, error)
	SetRole(ctx context.Context, contentID, userID uint64, role domain.CollaboratorRole) (*domain.Collaborator, error)
	Remove(ctx context.Context, contentID, userID uint64) error
	List(ctx context.Context, contentID uint64) ([]*domain.Collaborator, error)
}

type collaboratorService struct {
	contents repository.ContentRepository
	collabs  repository.CollaboratorRepository
	users    repository.UserRepository
}

// NewCollaboratorService creates a new CollaboratorService
func NewCollaboratorService(contents repository.ContentRepository, collabs repository.CollaboratorRepository, users repository.UserRepository) CollaboratorService {
	return &collaboratorService{contents: contents, collabs: collabs, users: users}
}

func (s *collaboratorService) Add(ctx context.Context, actorID uint64, contentID uint64, req *domain.AddCollaboratorRequest) (*domain.Collaborator, error) {
	if !req.Role.Valid() {
		return nil, common.ErrInvalidInput
	}

	item, err := s.contents.FindByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if !item.Owned() {
		return nil, common.ErrOwnerlessContent
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		// unknown identity, surfaces as not found
		return nil, err
	}

	collab := &domain.Collaborator{
		ContentID: contentID,
		UserID:    user.ID,
		Role:      req.Role,
		InvitedBy: actorID,
	}
	if err := s.collabs.Upsert(ctx, collab); err != nil {
		return nil, err
	}
	return collab, nil
}

func (s *collaboratorService) SetRole(ctx context.Context, contentID, userID uint64, role domain.CollaboratorRole) (*domain.Collaborator, error) {
	if !role.Valid() {
		return nil, common.ErrInvalidInput
	}

	collab, err := s.collabs.Find(ctx, contentID, userID)
	if err != nil {
		return nil, err
	}

	collab.Role = role
	if err := s.collabs.Upsert(ctx, collab); err != nil {
		return nil, err
	}
	return collab, nil
}

func (s *collaboratorService) Remove(ctx context.Context, contentID, userID uint64) error {
	return s.collabs.Remove(ctx, contentID, userID)
}

func (s *collaboratorService) List(ctx context.Context, contentID uint64) ([]*domain.Collaborator, error) {
	if _, err := s.contents.FindByID(ctx, contentID); err != nil {
		return nil, err
	}
	return s.collabs.ListByContent(ctx, contentID)
}
