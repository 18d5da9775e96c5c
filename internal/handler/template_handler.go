package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/domain"
	"github.com/draftmark/draftmark-backend/internal/service"
)

// TemplateHandler handles template CRUD. Mutations are admin-only; reads are
// open so editors can pick a template.
type TemplateHandler struct {
	templates service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler
func NewTemplateHandler(templates service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

// Create handles POST /api/v1/templates
// @Summary Register a template
// @Accept json
// @Produce json
// @Param request body domain.Template true "template"
// @Success 200 {object} common.APIResponse{data=domain.Template}
// @Failure 409 {object} common.APIResponse
// @Security BearerAuth
// @Router /templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var tmpl domain.Template
	if err := c.ShouldBindJSON(&tmpl); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if tmpl.Name == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "template name is required", common.ErrInvalidInput)
		return
	}

	created, err := h.templates.Create(c.Request.Context(), &tmpl)
	if err != nil {
		common.FailFromError(c, err, "failed to create template")
		return
	}
	common.SuccessResponse(c, created, nil)
}

// Get handles GET /api/v1/templates/:name
// @Summary Get a template by name
// @Produce json
// @Param name path string true "template name"
// @Success 200 {object} common.APIResponse{data=domain.Template}
// @Failure 404 {object} common.APIResponse
// @Router /templates/{name} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	tmpl, err := h.templates.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		common.FailFromError(c, err, "failed to get template")
		return
	}
	common.SuccessResponse(c, tmpl, nil)
}

// List handles GET /api/v1/templates
// @Summary List templates
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.Template}
// @Router /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templates.List(c.Request.Context())
	if err != nil {
		common.FailFromError(c, err, "failed to list templates")
		return
	}
	common.SuccessResponse(c, templates, nil)
}

// Delete handles DELETE /api/v1/templates/:name
// @Summary Delete a template
// @Produce json
// @Param name path string true "template name"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /templates/{name} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	name := c.Param("name")
	if name == domain.DefaultTemplateName {
		common.ErrorResponse(c, http.StatusBadRequest, "default template cannot be deleted", common.ErrInvalidInput)
		return
	}

	if err := h.templates.Delete(c.Request.Context(), name); err != nil {
		common.FailFromError(c, err, "failed to delete template")
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": name}, nil)
}
