package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every route on rg. metrics may be nil.
func RegisterRoutes(rg gin.IRoutes, h *Handlers, metrics http.Handler) {
	rg.GET("/healthz", h.HandleHealth)

	// Title autocomplete
	rg.GET("/search", h.HandleLegacySearch)
	rg.GET("/search/:ownerId", h.HandleSearch)
	rg.GET("/search/:ownerId/*prefix", h.HandleSearch)

	// Index lifecycle
	rg.POST("/index/rebuild", h.HandleRebuild)
	rg.GET("/index/stats", h.HandleStats)

	// Documents
	rg.POST("/upload", h.HandleUpload)
	rg.GET("/documents", h.HandleListDocuments)
	rg.GET("/documents/:documentId", h.HandleGetDocument)
	rg.GET("/documents/:documentId/download", h.HandleDownload)
	rg.DELETE("/documents/:documentId", h.HandleDeleteDocument)

	// Categories
	rg.GET("/categories", h.HandleListCategories)
	rg.POST("/categories", h.HandleAddCategories)

	// Users
	rg.GET("/users", h.HandleListUsers)
	rg.POST("/users", h.HandleCreateUser)
	rg.GET("/users/:userId", h.HandleGetUser)
	rg.DELETE("/users/:userId", h.HandleDeleteUser)
	rg.GET("/users/:userId/documents", h.HandleUserDocuments)

	if metrics != nil {
		rg.GET("/metrics", gin.WrapH(metrics))
	}
}
