package service

import (
	"context"

	"github.com/draftmark/draftmark-backend/internal/domain"
	"github.com/draftmark/draftmark-backend/internal/repository"
	"github.com/draftmark/draftmark-backend/pkg/cache"
	"github.com/draftmark/draftmark-backend/pkg/logger"
)

// RevisionService is the undo/redo controller over the revision log. Pointer
// moves happen inside the repository's transactions; this layer clamps
// listing limits, carries the actor and keeps the content cache honest.
type RevisionService interface {
	Bootstrap(ctx context.Context, actorID uint64, contentID uint64) (int64, error)
	History(ctx context.Context, contentID uint64, limit int) ([]domain.RevisionMeta, error)
	Get(ctx context.Context, contentID uint64, rev int64) (*domain.Revision, error)
	Restore(ctx context.Context, contentID uint64, rev int64) (*domain.ContentItem, error)
	Undo(ctx context.Context, actorID uint64, contentID uint64) (*domain.ContentItem, error)
	Redo(ctx context.Context, actorID uint64, contentID uint64) (*domain.ContentItem, error)
}

type revisionService struct {
	revisions repository.RevisionRepository
	cache     cache.Service
}

// NewRevisionService creates a new RevisionService
func NewRevisionService(revisions repository.RevisionRepository, cacheSvc cache.Service) RevisionService {
	return &revisionService{revisions: revisions, cache: cacheSvc}
}

// actorPtr maps the middleware's actor convention (0 = anonymous) to the
// nullable column the revision log stores.
func actorPtr(actorID uint64) *uint64 {
	if actorID == 0 {
		return nil
	}
	return &actorID
}

// Bootstrap lazily creates the rev-1 snapshot. Safe to call repeatedly.
func (s *revisionService) Bootstrap(ctx context.Context, actorID uint64, contentID uint64) (int64, error) {
	return s.revisions.EnsureInitial(ctx, contentID, actorPtr(actorID))
}

func (s *revisionService) History(ctx context.Context, contentID uint64, limit int) ([]domain.RevisionMeta, error) {
	return s.revisions.List(ctx, contentID, domain.ClampHistoryLimit(limit))
}

func (s *revisionService) Get(ctx context.Context, contentID uint64, rev int64) (*domain.Revision, error) {
	return s.revisions.Get(ctx, contentID, rev)
}

func (s *revisionService) Restore(ctx context.Context, contentID uint64, rev int64) (*domain.ContentItem, error) {
	item, err := s.revisions.Restore(ctx, contentID, rev)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, contentID)
	return item, nil
}

func (s *revisionService) Undo(ctx context.Context, actorID uint64, contentID uint64) (*domain.ContentItem, error) {
	item, err := s.revisions.Undo(ctx, contentID, actorPtr(actorID))
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, contentID)
	return item, nil
}

func (s *revisionService) Redo(ctx context.Context, actorID uint64, contentID uint64) (*domain.ContentItem, error) {
	item, err := s.revisions.Redo(ctx, contentID, actorPtr(actorID))
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, contentID)
	return item, nil
}

func (s *revisionService) invalidate(ctx context.Context, contentID uint64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateContent(ctx, contentID); err != nil {
		logger.Warn("content cache invalidation failed for item %d: %v", contentID, err)
	}
}
