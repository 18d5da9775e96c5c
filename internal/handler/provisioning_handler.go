package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/draftmark/draftmark-backend/internal/common"
	"github.com/draftmark/draftmark-backend/internal/middleware"
	"github.com/draftmark/draftmark-backend/internal/service"
)

// ProvisioningHandler exposes one-time system setup.
type ProvisioningHandler struct {
	provisioning service.ProvisioningService
}

// NewProvisioningHandler creates a new ProvisioningHandler
func NewProvisioningHandler(provisioning service.ProvisioningService) *ProvisioningHandler {
	return &ProvisioningHandler{provisioning: provisioning}
}

// ClaimFirstAdmin handles POST /api/v1/admin/claim
// @Summary Claim the first-admin seat
// @Description Exactly one caller ever wins; later claims return won=false.
// @Produce json
// @Success 200 {object} common.APIResponse
// @Failure 401 {object} common.APIResponse
// @Security BearerAuth
// @Router /admin/claim [post]
func (h *ProvisioningHandler) ClaimFirstAdmin(c *gin.Context) {
	actorID := middleware.GetActorID(c)
	if actorID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required", common.ErrForbidden)
		return
	}

	won, err := h.provisioning.ClaimFirstAdmin(c.Request.Context(), actorID)
	if err != nil {
		common.FailFromError(c, err, "failed to claim first admin")
		return
	}
	common.SuccessResponse(c, gin.H{"won": won}, nil)
}

// Status handles GET /api/v1/admin/status
// @Summary Report whether the first admin has been assigned
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.SystemSettings}
// @Router /admin/status [get]
func (h *ProvisioningHandler) Status(c *gin.Context) {
	settings, err := h.provisioning.Status(c.Request.Context())
	if err != nil {
		common.FailFromError(c, err, "failed to read system status")
		return
	}
	common.SuccessResponse(c, settings, nil)
}
