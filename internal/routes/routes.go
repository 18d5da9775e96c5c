package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/draftmark/draftmark-backend/internal/handler"
	"github.com/draftmark/draftmark-backend/internal/middleware"
	"github.com/draftmark/draftmark-backend/pkg/jwt"
)

// Setup configures all API routes.
//
// Read endpoints take OptionalJWTAuth so anonymous viewers reach the access
// gate with actor 0; every mutating endpoint requires a verified token.
func Setup(
	router *gin.Engine,
	contentHandler *handler.ContentHandler,
	revisionHandler *handler.RevisionHandler,
	collaboratorHandler *handler.CollaboratorHandler,
	siteHandler *handler.SiteHandler,
	templateHandler *handler.TemplateHandler,
	provisioningHandler *handler.ProvisioningHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	authed := middleware.JWTAuth(jwtManager)
	optional := middleware.OptionalJWTAuth(jwtManager)

	// Content items
	contents := api.Group("/contents")
	{
		contents.GET("", optional, contentHandler.List)
		contents.GET("/:id", optional, contentHandler.Get)
		contents.POST("", authed, contentHandler.Create)
		contents.PATCH("/:id", authed, contentHandler.Update)
		contents.POST("/:id/publish", authed, contentHandler.Publish)
		contents.DELETE("/:id", authed, contentHandler.Delete)

		// Revision log
		revisions := contents.Group("/:id/revisions")
		{
			revisions.GET("", optional, revisionHandler.History)
			revisions.GET("/:rev", optional, revisionHandler.Get)
			revisions.POST("/bootstrap", authed, revisionHandler.Bootstrap)
			revisions.POST("/:rev/restore", authed, revisionHandler.Restore)
		}
		contents.POST("/:id/undo", authed, revisionHandler.Undo)
		contents.POST("/:id/redo", authed, revisionHandler.Redo)

		// Collaborator roster (owner only, enforced in the handler)
		collaborators := contents.Group("/:id/collaborators", authed)
		{
			collaborators.GET("", collaboratorHandler.List)
			collaborators.POST("", collaboratorHandler.Add)
			collaborators.PUT("/:user_id", collaboratorHandler.SetRole)
			collaborators.DELETE("/:user_id", collaboratorHandler.Remove)
		}
	}

	// Sites
	sites := api.Group("/sites")
	{
		sites.GET("", siteHandler.List)
		sites.GET("/:id", siteHandler.Get)
		sites.POST("", authed, siteHandler.Create)
		sites.PUT("/:id/active", authed, siteHandler.SetActive)
		sites.DELETE("/:id", authed, siteHandler.Delete)
	}

	// Templates
	templates := api.Group("/templates")
	{
		templates.GET("", templateHandler.List)
		templates.GET("/:name", templateHandler.Get)
		templates.POST("", authed, templateHandler.Create)
		templates.DELETE("/:name", authed, templateHandler.Delete)
	}

	// One-time provisioning
	admin := api.Group("/admin")
	{
		admin.GET("/status", provisioningHandler.Status)
		admin.POST("/claim", authed, provisioningHandler.ClaimFirstAdmin)
	}
}
