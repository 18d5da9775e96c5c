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

// ContentHandler handles content item requests. Permission decisions happen
// here, before any mutating service call: the gate is consulted first, then
// the operation runs.
type ContentHandler struct {
	contents service.ContentService
	access   service.AccessService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contents service.ContentService, access service.AccessService) *ContentHandler {
	return &ContentHandler{contents: contents, access: access}
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid content id", err)
		return 0, false
	}
	return id, true
}

// Create handles POST /api/v1/contents
// @Summary Create a content item
// @Description Creates a new draft page or post owned by the caller
// @Tags contents
// @Accept json
// @Produce json
// @Param request body domain.CreateContentRequest true "content fields"
// @Success 200 {object} common.APIResponse{data=domain.ContentItem}
// @Failure 409 {object} common.APIResponse
// @Security BearerAuth
// @Router /contents [post]
func (h *ContentHandler) Create(c *gin.Context) {
	var req domain.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Kind != domain.KindPage && req.Kind != domain.KindPost {
		common.ErrorResponse(c, http.StatusBadRequest, "kind must be page or post", nil)
		return
	}

	item, err := h.contents.Create(c.Request.Context(), middleware.GetActorID(c), &req)
	if err != nil {
		common.FailFromError(c, err, "failed to create content")
		return
	}
	common.SuccessResponse(c, item, nil)
}

// Get handles GET /api/v1/contents/:id
// @Summary Get a content item
// @Produce json
// @Param id path int true "content id"
// @Success 200 {object} common.APIResponse{data=domain.ContentItem}
// @Failure 404 {object} common.APIResponse
// @Router /contents/{id} [get]
func (h *ContentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.contents.Get(c.Request.Context(), id)
	if err != nil {
		common.FailFromError(c, err, "failed to load content")
		return
	}

	canView, err := h.access.CanView(c.Request.Context(), item, middleware.GetActorID(c))
	if err != nil {
		common.FailFromError(c, err, "permission check failed")
		return
	}
	if !canView {
		common.ErrorResponse(c, http.StatusForbidden, "you may not view this content", common.ErrForbidden)
		return
	}
	common.SuccessResponse(c, item, nil)
}

// List handles GET /api/v1/contents
// @Summary List content items
// @Produce json
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Success 200 {object} common.APIResponse{data=[]domain.ContentItem}
// @Router /contents [get]
func (h *ContentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, meta, err := h.contents.List(c.Request.Context(), page, limit)
	if err != nil {
		common.FailFromError(c, err, "failed to list contents")
		return
	}
	common.SuccessResponse(c, items, meta)
}

// Update handles PATCH /api/v1/contents/:id
// @Summary Update a content item
// @Description Partial merge: absent fields keep their value. Records a revision.
// @Accept json
// @Produce json
// @Param id path int true "content id"
// @Param request body domain.ContentPatch true "changed fields"
// @Success 200 {object} common.APIResponse{data=domain.ContentItem}
// @Failure 403 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Security BearerAuth
// @Router /contents/{id} [patch]
func (h *ContentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch domain.ContentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	actorID := middleware.GetActorID(c)
	if !h.requireEdit(c, id, actorID) {
		return
	}

	item, err := h.contents.Update(c.Request.Context(), actorID, id, &patch)
	if err != nil {
		common.FailFromError(c, err, "failed to update content")
		return
	}
	middleware.CountRevisionWrite("record")
	common.SuccessResponse(c, item, nil)
}

// Publish handles POST /api/v1/contents/:id/publish
// @Summary Publish a content item
// @Description Sets status to published; the first publish time is permanent
// @Produce json
// @Param id path int true "content id"
// @Success 200 {object} common.APIResponse{data=domain.ContentItem}
// @Failure 403 {object} common.APIResponse
// @Security BearerAuth
// @Router /contents/{id}/publish [post]
func (h *ContentHandler) Publish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	actorID := middleware.GetActorID(c)
	if !h.requireEdit(c, id, actorID) {
		return
	}

	item, err := h.contents.Publish(c.Request.Context(), actorID, id)
	if err != nil {
		common.FailFromError(c, err, "failed to publish content")
		return
	}
	middleware.CountRevisionWrite("record")
	common.SuccessResponse(c, item, nil)
}

// Delete handles DELETE /api/v1/contents/:id
// @Summary Delete a content item
// @Description Removes the item with its revisions and roster
// @Produce json
// @Param id path int true "content id"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Security BearerAuth
// @Router /contents/{id} [delete]
func (h *ContentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.contents.Get(c.Request.Context(), id)
	if err != nil {
		common.FailFromError(c, err, "failed to load content")
		return
	}

	actorID := middleware.GetActorID(c)
	// owned items are deleted by their owner only; legacy items follow the
	// universal-edit rule
	allowed := h.access.CanManageCollaborators(item, actorID)
	if !item.Owned() {
		allowed, err = h.access.CanEdit(c.Request.Context(), item, actorID)
		if err != nil {
			common.FailFromError(c, err, "permission check failed")
			return
		}
	}
	if !allowed {
		common.ErrorResponse(c, http.StatusForbidden, "you may not delete this content", common.ErrForbidden)
		return
	}

	if err := h.contents.Delete(c.Request.Context(), id); err != nil {
		common.FailFromError(c, err, "failed to delete content")
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": id}, nil)
}

// requireEdit loads the item, consults the gate and writes the error response
// when the actor may not edit. Returns true when the caller may proceed.
func (h *ContentHandler) requireEdit(c *gin.Context, id uint64, actorID uint64) bool {
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
