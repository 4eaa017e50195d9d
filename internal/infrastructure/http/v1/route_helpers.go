package v1

import (
	"github.com/gin-gonic/gin"
)

// ResourceRouteHandler defines the interface for handlers serving the
// schema-driven resources.
type ResourceRouteHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	PreviewRouteHandler
}

// PreviewRouteHandler renders statements from a query string.
type PreviewRouteHandler interface {
	Query(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterResourceRoutes registers the listing and preview routes of the
// schema-driven resources.
//
//	GET  /resources
//	GET  /resources/:name
//	GET  /resources/:name/query
//	GET  /resources/:name/delete
func RegisterResourceRoutes(group *gin.RouterGroup, handler ResourceRouteHandler) {
	group.GET("", handler.List)
	group.GET("/:name", handler.Get)
	RegisterPreviewRoutes(group.Group("/:name"), handler)
}

// RegisterPreviewRoutes registers the statement preview routes on group.
func RegisterPreviewRoutes(group *gin.RouterGroup, handler PreviewRouteHandler) {
	group.GET("/query", handler.Query)
	group.GET("/delete", handler.Delete)
}
