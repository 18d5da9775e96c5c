package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/draftmark/draftmark-backend/internal/domain"
)

// --- Mock ContentRepository ---

type mockContentRepo struct {
	mock.Mock
}

func (m *mockContentRepo) Create(ctx context.Context, item *domain.ContentItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockContentRepo) FindByID(ctx context.Context, id uint64) (*domain.ContentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *mockContentRepo) FindBySlug(ctx context.Context, kind domain.ContentKind, slug string) (*domain.ContentItem, error) {
	args := m.Called(ctx, kind, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *mockContentRepo) List(ctx context.Context, page, limit int) ([]*domain.ContentItem, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.ContentItem), args.Get(1).(int64), args.Error(2)
}

func (m *mockContentRepo) Update(ctx context.Context, id uint64, patch *domain.ContentPatch) (*domain.ContentItem, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *mockContentRepo) Publish(ctx context.Context, id uint64) (*domain.ContentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *mockContentRepo) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock RevisionRepository ---

type mockRevisionRepo struct {
	mock.Mock
}

func (m *mockRevisionRepo) EnsureInitial(ctx context.Context, contentID uint64, actorID *uint64) (int64, error) {
	args := m.Called(ctx, contentID, actorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRevisionRepo) Record(ctx context.Context, contentID uint64, actorID *uint64) (int64, error) {
	args := m.Called(ctx, contentID, actorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRevisionRepo) List(ctx context.Context, contentID uint64, limit int) ([]domain.RevisionMeta, error) {
	args := m.Called(ctx, contentID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RevisionMeta), args.Error(1)
}

func (m *mockRevisionRepo) Get(ctx context.Context, contentID uint64, rev int64) (*domain.Revision, error) {
	args := m.Called(ctx, contentID, rev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *mockRevisionRepo) Restore(ctx context.Context, contentID uint64, rev int64) (*domain.ContentItem, error) {
	args := m.Called(ctx, contentID, rev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *mockRevisionRepo) Undo(ctx context.Context, contentID uint64, actorID *uint64) (*domain.ContentItem, error) {
	args := m.Called(ctx, contentID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *mockRevisionRepo) Redo(ctx context.Context, contentID uint64, actorID *uint64) (*domain.ContentItem, error) {
	args := m.Called(ctx, contentID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

// --- Mock CollaboratorRepository ---

type mockCollaboratorRepo struct {
	mock.Mock
}

func (m *mockCollaboratorRepo) Upsert(ctx context.Context, collab *domain.Collaborator) error {
	return m.Called(ctx, collab).Error(0)
}

func (m *mockCollaboratorRepo) Find(ctx context.Context, contentID, userID uint64) (*domain.Collaborator, error) {
	args := m.Called(ctx, contentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collaborator), args.Error(1)
}

func (m *mockCollaboratorRepo) ListByContent(ctx context.Context, contentID uint64) ([]*domain.Collaborator, error) {
	args := m.Called(ctx, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Collaborator), args.Error(1)
}

func (m *mockCollaboratorRepo) Remove(ctx context.Context, contentID, userID uint64) error {
	return m.Called(ctx, contentID, userID).Error(0)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock SettingsRepository ---

type mockSettingsRepo struct {
	mock.Mock
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*domain.SystemSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemSettings), args.Error(1)
}

func (m *mockSettingsRepo) ClaimFirstAdmin(ctx context.Context, userID uint64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}
