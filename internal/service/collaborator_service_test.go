package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
)

func TestAddCollaborator_Success(t *testing.T) {
	contents := new(mockContentRepo)
	collabs := new(mockCollaboratorRepo)
	users := new(mockUserRepo)
	svc := NewCollaboratorService(contents, collabs, users)

	owner := uint64(1)
	contents.On("FindByID", mock.Anything, uint64(10)).Return(&domain.ContentItem{ID: 10, OwnerID: &owner}, nil)
	users.On("FindByEmail", mock.Anything, "bob@example.com").Return(&domain.User{ID: 2, Email: "bob@example.com"}, nil)
	collabs.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Collaborator")).Return(nil)

	req := &domain.AddCollaboratorRequest{Email: "bob@example.com", Role: domain.RoleViewer}
	collab, err := svc.Add(context.Background(), 1, 10, req)

	assert.NoError(t, err)
	assert.Equal(t, uint64(2), collab.UserID)
	assert.Equal(t, domain.RoleViewer, collab.Role)
	assert.Equal(t, uint64(1), collab.InvitedBy)
	collabs.AssertExpectations(t)
}

func TestAddCollaborator_UnknownEmail(t *testing.T) {
	contents := new(mockContentRepo)
	collabs := new(mockCollaboratorRepo)
	users := new(mockUserRepo)
	svc := NewCollaboratorService(contents, collabs, users)

	owner := uint64(1)
	contents.On("FindByID", mock.Anything, uint64(10)).Return(&domain.ContentItem{ID: 10, OwnerID: &owner}, nil)
	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, common.ErrUserNotFound)

	req := &domain.AddCollaboratorRequest{Email: "nobody@example.com", Role: domain.RoleEditor}
	_, err := svc.Add(context.Background(), 1, 10, req)

	assert.ErrorIs(t, err, common.ErrUserNotFound)
	collabs.AssertNotCalled(t, "Upsert")
}

func TestAddCollaborator_OwnerlessItem(t *testing.T) {
	contents := new(mockContentRepo)
	collabs := new(mockCollaboratorRepo)
	users := new(mockUserRepo)
	svc := NewCollaboratorService(contents, collabs, users)

	contents.On("FindByID", mock.Anything, uint64(10)).Return(&domain.ContentItem{ID: 10}, nil)

	req := &domain.AddCollaboratorRequest{Email: "bob@example.com", Role: domain.RoleViewer}
	_, err := svc.Add(context.Background(), 1, 10, req)

	assert.ErrorIs(t, err, common.ErrOwnerlessContent)
	users.AssertNotCalled(t, "FindByEmail")
}

func TestAddCollaborator_InvalidRole(t *testing.T) {
	svc := NewCollaboratorService(new(mockContentRepo), new(mockCollaboratorRepo), new(mockUserRepo))

	req := &domain.AddCollaboratorRequest{Email: "bob@example.com", Role: "superuser"}
	_, err := svc.Add(context.Background(), 1, 10, req)

	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSetRole_ViewerToEditor(t *testing.T) {
	collabs := new(mockCollaboratorRepo)
	svc := NewCollaboratorService(new(mockContentRepo), collabs, new(mockUserRepo))

	existing := &domain.Collaborator{ContentID: 10, UserID: 2, Role: domain.RoleViewer, InvitedBy: 1}
	collabs.On("Find", mock.Anything, uint64(10), uint64(2)).Return(existing, nil)
	collabs.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Collaborator")).Return(nil)

	collab, err := svc.SetRole(context.Background(), 10, 2, domain.RoleEditor)

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleEditor, collab.Role)
	// the original inviter is preserved across role changes
	assert.Equal(t, uint64(1), collab.InvitedBy)
	collabs.AssertExpectations(t)
}

func TestSetRole_NotACollaborator(t *testing.T) {
	collabs := new(mockCollaboratorRepo)
	svc := NewCollaboratorService(new(mockContentRepo), collabs, new(mockUserRepo))

	collabs.On("Find", mock.Anything, uint64(10), uint64(9)).Return(nil, common.ErrCollaboratorNotFound)

	_, err := svc.SetRole(context.Background(), 10, 9, domain.RoleEditor)
	assert.ErrorIs(t, err, common.ErrCollaboratorNotFound)
}

func TestRemoveCollaborator_Missing(t *testing.T) {
	collabs := new(mockCollaboratorRepo)
	svc := NewCollaboratorService(new(mockContentRepo), collabs, new(mockUserRepo))

	collabs.On("Remove", mock.Anything, uint64(10), uint64(9)).Return(common.ErrCollaboratorNotFound)

	err := svc.Remove(context.Background(), 10, 9)
	assert.ErrorIs(t, err, common.ErrCollaboratorNotFound)
}

func TestListCollaborators(t *testing.T) {
	contents := new(mockContentRepo)
	collabs := new(mockCollaboratorRepo)
	svc := NewCollaboratorService(contents, collabs, new(mockUserRepo))

	owner := uint64(1)
	roster := []*domain.Collaborator{
		{ContentID: 10, UserID: 2, Role: domain.RoleEditor},
		{ContentID: 10, UserID: 3, Role: domain.RoleViewer},
	}
	contents.On("FindByID", mock.Anything, uint64(10)).Return(&domain.ContentItem{ID: 10, OwnerID: &owner}, nil)
	collabs.On("ListByContent", mock.Anything, uint64(10)).Return(roster, nil)

	result, err := svc.List(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
}
