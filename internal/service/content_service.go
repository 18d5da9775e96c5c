package service

import (
	"context"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
	"github.com/draftmark/draftmark-backend/internal/repository"
	"github.com/draftmark/draftmark-backend/pkg/cache"
	"github.com/draftmark/draftmark-backend/pkg/logger"
)

// ContentService handles content item business logic. Every mutating path
// records a revision after the write and invalidates the cached projection.
type ContentService interface {
	Create(ctx context.Context, actorID uint64, req *domain.CreateContentRequest) (*domain.ContentItem, error)
	Get(ctx context.Context, id uint64) (*domain.ContentItem, error)
	List(ctx context.Context, page, limit int) ([]*domain.ContentItem, *common.Meta, error)
	Update(ctx context.Context, actorID uint64, id uint64, patch *domain.ContentPatch) (*domain.ContentItem, error)
	Publish(ctx context.Context, actorID uint64, id uint64) (*domain.ContentItem, error)
	Delete(ctx context.Context, id uint64) error
}

type contentService struct {
	contents  repository.ContentRepository
	revisions repository.RevisionRepository
	cache     cache.Service
}

// NewContentService creates a new ContentService
func NewContentService(contents repository.ContentRepository, revisions repository.RevisionRepository, cacheSvc cache.Service) ContentService {
	return &contentService{contents: contents, revisions: revisions, cache: cacheSvc}
}

// Create inserts a new draft. The revision log is not touched yet: rev 1 is
// created lazily on the first log operation.
func (s *contentService) Create(ctx context.Context, actorID uint64, req *domain.CreateContentRequest) (*domain.ContentItem, error) {
	item := &domain.ContentItem{
		Kind:     req.Kind,
		Slug:     req.Slug,
		Status:   domain.StatusDraft,
		Title:    req.Title,
		Body:     req.Body,
		Template: req.Template,
	}
	if item.Template == "" {
		item.Template = domain.DefaultTemplateName
	}
	// actor 0 creates legacy/global content without an owner
	if actorID != 0 {
		owner := actorID
		item.OwnerID = &owner
	}

	if err := s.contents.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *contentService) Get(ctx context.Context, id uint64) (*domain.ContentItem, error) {
	if s.cache != nil {
		var cached domain.ContentItem
		if err := s.cache.GetContent(ctx, id, &cached); err == nil {
			return &cached, nil
		}
	}

	item, err := s.contents.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetContent(ctx, id, item); err != nil {
			logger.Warn("content cache set failed for item %d: %v", id, err)
		}
	}
	return item, nil
}

func (s *contentService) List(ctx context.Context, page, limit int) ([]*domain.ContentItem, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	items, total, err := s.contents.List(ctx, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return items, &common.Meta{Page: page, Limit: limit, Total: total}, nil
}

// Update applies a partial merge, then records the post-mutation state as a
// new revision. The record call truncates any redo branch left by an undo.
func (s *contentService) Update(ctx context.Context, actorID uint64, id uint64, patch *domain.ContentPatch) (*domain.ContentItem, error) {
	if patch.Empty() {
		return s.contents.FindByID(ctx, id)
	}

	item, err := s.contents.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	rev, err := s.recordRevision(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	item.CurrentRev = rev

	s.invalidate(ctx, id)
	return item, nil
}

func (s *contentService) Publish(ctx context.Context, actorID uint64, id uint64) (*domain.ContentItem, error) {
	item, err := s.contents.Publish(ctx, id)
	if err != nil {
		return nil, err
	}

	// a status change is a content-mutating write like any other
	rev, err := s.recordRevision(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	item.CurrentRev = rev

	s.invalidate(ctx, id)
	return item, nil
}

func (s *contentService) Delete(ctx context.Context, id uint64) error {
	if err := s.contents.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *contentService) recordRevision(ctx context.Context, id uint64, actorID uint64) (int64, error) {
	var actor *uint64
	if actorID != 0 {
		actor = &actorID
	}
	return s.revisions.Record(ctx, id, actor)
}

func (s *contentService) invalidate(ctx context.Context, id uint64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateContent(ctx, id); err != nil {
		logger.Warn("content cache invalidation failed for item %d: %v", id, err)
	}
}
