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

// RevisionHandler exposes the revision log and the undo/redo controller.
// View access gates reads, edit access gates pointer moves.
type RevisionHandler struct {
	contents  service.ContentService
	revisions service.RevisionService
	access    service.AccessService
}

// NewRevisionHandler creates a new RevisionHandler
func NewRevisionHandler(contents service.ContentService, revisions service.RevisionService, access service.AccessService) *RevisionHandler {
	return &RevisionHandler{contents: contents, revisions: revisions, access: access}
}

func parseRev(c *gin.Context) (int64, bool) {
	rev, err := strconv.ParseInt(c.Param("rev"), 10, 64)
	if err != nil || rev < 1 {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid revision number", err)
		return 0, false
	}
	return rev, true
}

// History handles GET /api/v1/contents/:id/revisions
// @Summary List revision history
// @Description Bodyless revision metadata, newest first; limit clamped to [1,200]
// @Produce json
// @Param id path int true "content id"
// @Param limit query int false "limit"
// @Success 200 {object} common.APIResponse{data=[]domain.RevisionMeta}
// @Failure 404 {object} common.APIResponse
// @Router /contents/{id}/revisions [get]
func (h *RevisionHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.requireView(c, id) {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(domain.HistoryLimitDefault)))
	metas, err := h.revisions.History(c.Request.Context(), id, limit)
	if err != nil {
		common.FailFromError(c, err, "failed to list revisions")
		return
	}
	common.SuccessResponse(c, metas, nil)
}

// Get handles GET /api/v1/contents/:id/revisions/:rev
// @Summary Get one revision
// @Produce json
// @Param id path int true "content id"
// @Param rev path int true "revision number"
// @Success 200 {object} common.APIResponse{data=domain.Revision}
// @Failure 404 {object} common.APIResponse
// @Router /contents/{id}/revisions/{rev} [get]
func (h *RevisionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rev, ok := parseRev(c)
	if !ok {
		return
	}
	if !h.requireView(c, id) {
		return
	}

	revision, err := h.revisions.Get(c.Request.Context(), id, rev)
	if err != nil {
		common.FailFromError(c, err, "failed to load revision")
		return
	}
	common.SuccessResponse(c, revision, nil)
}

// Bootstrap handles POST /api/v1/contents/:id/revisions/bootstrap
// @Summary Ensure the initial revision exists
// @Description Idempotent: snapshots the current state as rev 1 when missing
// @Produce json
// @Param id path int true "content id"
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
// @Router /contents/{id}/revisions/bootstrap [post]
func (h *RevisionHandler) Bootstrap(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actorID := middleware.GetActorID(c)
	if !h.requireEdit(c, id, actorID) {
		return
	}

	rev, err := h.revisions.Bootstrap(c.Request.Context(), actorID, id)
	if err != nil {
		common.FailFromError(c, err, "failed to bootstrap revision log")
		return
	}
	common.SuccessResponse(c, gin.H{"current_rev": rev}, nil)
}

// Restore handles POST /api/v1/contents/:id/revisions/:rev/restore
// @Summary Restore a specific revision
// @Description Materializes the snapshot as the live state and moves the pointer
// @Produce json
// @Param id path int true "content id"
// @Param rev path int true "revision number"
// @Success 200 {object} common.APIResponse{data=domain.ContentItem}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /contents/{id}/revisions/{rev}/restore [post]
func (h *RevisionHandler) Restore(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rev, ok := parseRev(c)
	if !ok {
		return
	}
	if !h.requireEdit(c, id, middleware.GetActorID(c)) {
		return
	}

	item, err := h.revisions.Restore(c.Request.Context(), id, rev)
	if err != nil {
		common.FailFromError(c, err, "failed to restore revision")
		return
	}
	middleware.CountRevisionWrite("restore")
	common.SuccessResponse(c, item, nil)
}

// Undo handles POST /api/v1/contents/:id/undo
// @Summary Undo the latest edit
// @Description Moves the pointer one revision back; at rev 1 it stays put
// @Produce json
// @Param id path int true "content id"
// @Success 200 {object} common.APIResponse{data=domain.ContentItem}
// @Security BearerAuth
// @Router /contents/{id}/undo [post]
func (h *RevisionHandler) Undo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actorID := middleware.GetActorID(c)
	if !h.requireEdit(c, id, actorID) {
		return
	}

	item, err := h.revisions.Undo(c.Request.Context(), actorID, id)
	if err != nil {
		common.FailFromError(c, err, "failed to undo")
		return
	}
	middleware.CountRevisionWrite("undo")
	common.SuccessResponse(c, item, nil)
}

// Redo handles POST /api/v1/contents/:id/redo
// @Summary Redo an undone edit
// @Description Moves the pointer forward when a redo branch exists; no-op otherwise
// @Produce json
// @Param id path int true "content id"
// @Success 200 {object} common.APIResponse{data=domain.ContentItem}
// @Security BearerAuth
// @Router /contents/{id}/redo [post]
func (h *RevisionHandler) Redo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	actorID := middleware.GetActorID(c)
	if !h.requireEdit(c, id, actorID) {
		return
	}

	item, err := h.revisions.Redo(c.Request.Context(), actorID, id)
	if err != nil {
		common.FailFromError(c, err, "failed to redo")
		return
	}
	middleware.CountRevisionWrite("redo")
	common.SuccessResponse(c, item, nil)
}

func (h *RevisionHandler) requireView(c *gin.Context, id uint64) bool {
	item, err := h.contents.Get(c.Request.Context(), id)
	if err != nil {
		common.FailFromError(c, err, "failed to load content")
		return false
	}
	canView, err := h.access.CanView(c.Request.Context(), item, middleware.GetActorID(c))
	if err != nil {
		common.FailFromError(c, err, "permission check failed")
		return false
	}
	if !canView {
		common.ErrorResponse(c, http.StatusForbidden, "you may not view this content", common.ErrForbidden)
		return false
	}
	return true
}

func (h *RevisionHandler) requireEdit(c *gin.Context, id uint64, actorID uint64) bool {
	item, err := h.contents.Get(c.Request.Context(), id)
	if err != nil {
		common.FailFromError(c, err, "failed to load content")
		return false
	}
	canEdit, err := h.access.CanEdit(c.Request.Context(), item, actorID)
	if err != nil {
		common.FailFromError(c, err, "permission check failed")
		return false
	}
	if !canEdit {
		common.ErrorResponse(c, http.StatusForbidden, "you may not edit this content", common.ErrForbidden)
		return false
	}
	return true
}
