package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
	"github.com/draftmark/draftmark-backend/internal/middleware"
	"github.com/draftmark/draftmark-backend/internal/service"
)

// CollaboratorHandler handles roster requests. Every operation requires the
// manage-collaborators permission, which only the owner holds.
type CollaboratorHandler struct {
	contents service.ContentService
	collabs  service.CollaboratorService
	access   service.AccessService
}

// NewCollaboratorHandler creates a new CollaboratorHandler
func NewCollaboratorHandler(contents service.ContentService, collabs service.CollaboratorService, access service.AccessService) *CollaboratorHandler {
	return &CollaboratorHandler{contents: contents, collabs: collabs, access: access}
}

func parseUserID(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid user id", err)
		return 0, false
	}
	return userID, true
}

// List handles GET /api/v1/contents/:id/collaborators
// @Summary List collaborators
// @Produce json
// @Param id path int true "content id"
// @Success 200 {object} common.APIResponse{data=[]domain.Collaborator}
// @Failure 403 {object} common.APIResponse
// @Security BearerAuth
// @Router /contents/{id}/collaborators [get]
func (h *CollaboratorHandler) List(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.requireManage(c, id) {
		return
	}

	roster, err := h.collabs.List(c.Request.Context(), id)
	if err != nil {
		common.FailFromError(c, err, "failed to list collaborators")
		return
	}
	common.SuccessResponse(c, roster, nil)
}

// Add handles POST /api/v1/contents/:id/collaborators
// @Summary Invite a collaborator by email
// @Accept json
// @Produce json
// @Param id path int true "content id"
// @Param request body domain.AddCollaboratorRequest true "invite"
// @Success 200 {object} common.APIResponse{data=domain.Collaborator}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /contents/{id}/collaborators [post]
func (h *CollaboratorHandler) Add(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.requireManage(c, id) {
		return
	}

	var req domain.AddCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	collab, err := h.collabs.Add(c.Request.Context(), middleware.GetActorID(c), id, &req)
	if err != nil {
		common.FailFromError(c, err, "failed to add collaborator")
		return
	}
	common.SuccessResponse(c, collab, nil)
}

// SetRole handles PUT /api/v1/contents/:id/collaborators/:user_id
// @Summary Change a collaborator's role
// @Accept json
// @Produce json
// @Param id path int true "content id"
// @Param user_id path int true "collaborator user id"
// @Param request body domain.SetCollaboratorRoleRequest true "role"
// @Success 200 {object} common.APIResponse{data=domain.Collaborator}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /contents/{id}/collaborators/{user_id} [put]
func (h *CollaboratorHandler) SetRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	if !h.requireManage(c, id) {
		return
	}

	var req domain.SetCollaboratorRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	collab, err := h.collabs.SetRole(c.Request.Context(), id, userID, req.Role)
	if err != nil {
		common.FailFromError(c, err, "failed to change role")
		return
	}
	common.SuccessResponse(c, collab, nil)
}

// Remove handles DELETE /api/v1/contents/:id/collaborators/:user_id
// @Summary Remove a collaborator
// @Produce json
// @Param id path int true "content id"
// @Param user_id path int true "collaborator user id"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /contents/{id}/collaborators/{user_id} [delete]
func (h *CollaboratorHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	if !h.requireManage(c, id) {
		return
	}

	if err := h.collabs.Remove(c.Request.Context(), id, userID); err != nil {
		common.FailFromError(c, err, "failed to remove collaborator")
		return
	}
	common.SuccessResponse(c, gin.H{"removed": userID}, nil)
}

func (h *CollaboratorHandler) requireManage(c *gin.Context, id uint64) bool {
	item, err := h.contents.Get(c.Request.Context(), id)
	if err != nil {
		common.FailFromError(c, err, "failed to load content")
		return false
	}
	if !h.access.CanManageCollaborators(item, middleware.GetActorID(c)) {
		common.ErrorResponse(c, http.StatusForbidden, "only the owner manages collaborators", common.ErrForbidden)
		return false
	}
	return true
}
