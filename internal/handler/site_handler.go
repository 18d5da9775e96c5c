package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
	"github.com/draftmark/draftmark-backend/internal/middleware"
	"github.com/draftmark/draftmark-backend/internal/service"
)

// SiteHandler handles site CRUD. Mutations are admin-only.
type SiteHandler struct {
	sites service.SiteService
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(sites service.SiteService) *SiteHandler {
	return &SiteHandler{sites: sites}
}

// Create handles POST /api/v1/sites
// @Summary Create a site
// @Accept json
// @Produce json
// @Param request body domain.CreateSiteRequest true "site"
// @Success 200 {object} common.APIResponse{data=domain.Site}
// @Failure 409 {object} common.APIResponse
// @Security BearerAuth
// @Router /sites [post]
func (h *SiteHandler) Create(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req domain.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	site, err := h.sites.Create(c.Request.Context(), &req)
	if err != nil {
		common.FailFromError(c, err, "failed to create site")
		return
	}
	common.SuccessResponse(c, site, nil)
}

// Get handles GET /api/v1/sites/:id
// @Summary Get a site
// @Produce json
// @Param id path string true "site id"
// @Success 200 {object} common.APIResponse{data=domain.Site}
// @Failure 404 {object} common.APIResponse
// @Router /sites/{id} [get]
func (h *SiteHandler) Get(c *gin.Context) {
	site, err := h.sites.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.FailFromError(c, err, "failed to get site")
		return
	}
	common.SuccessResponse(c, site, nil)
}

// List handles GET /api/v1/sites
// @Summary List sites
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.Site}
// @Router /sites [get]
func (h *SiteHandler) List(c *gin.Context) {
	sites, err := h.sites.List(c.Request.Context())
	if err != nil {
		common.FailFromError(c, err, "failed to list sites")
		return
	}
	common.SuccessResponse(c, sites, nil)
}

// SetActive handles PUT /api/v1/sites/:id/active
// @Summary Activate or deactivate a site
// @Accept json
// @Produce json
// @Param id path string true "site id"
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
// @Router /sites/{id}/active [put]
func (h *SiteHandler) SetActive(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.sites.SetActive(c.Request.Context(), c.Param("id"), req.Active); err != nil {
		common.FailFromError(c, err, "failed to update site")
		return
	}
	common.SuccessResponse(c, gin.H{"id": c.Param("id"), "active": req.Active}, nil)
}

// Delete handles DELETE /api/v1/sites/:id
// @Summary Delete a site
// @Produce json
// @Param id path string true "site id"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /sites/{id} [delete]
func (h *SiteHandler) Delete(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	if err := h.sites.Delete(c.Request.Context(), c.Param("id")); err != nil {
		common.FailFromError(c, err, "failed to delete site")
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": c.Param("id")}, nil)
}

func requireAdmin(c *gin.Context) bool {
	if !middleware.IsAdmin(c) {
		common.ErrorResponse(c, http.StatusForbidden, "admin only", common.ErrForbidden)
		return false
	}
	return true
}
