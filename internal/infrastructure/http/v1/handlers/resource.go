package handlers

import (
	"github.com/gin-gonic/gin"

	"sieve/internal/domain/preview"
	"sieve/internal/infrastructure/http/v1/dto"
)

// ResourceHandler serves the schema-driven resources.
type ResourceHandler struct {
	*BaseHandler
	service *preview.Service
}

// NewResourceHandler creates a resource handler.
func NewResourceHandler(base *BaseHandler, service *preview.Service) *ResourceHandler {
	return &ResourceHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List returns a summary of every registered resource.
// GET /api/v1/resources
func (h *ResourceHandler) List(c *gin.Context) {
	h.OK(c, dto.NewListResponse(dto.FromResources(h.service.Resources())))
}

// Get returns the full definition of one resource.
// GET /api/v1/resources/:name
func (h *ResourceHandler) Get(c *gin.Context) {
	def, err := h.service.Resource(c.Param("name"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, def)
}

// Query renders the SELECT described by the query string.
// GET /api/v1/resources/:name/query?filter[age][gte]=20&sort=age
func (h *ResourceHandler) Query(c *gin.Context) {
	h.render(c, preview.KindSelect)
}

// Delete renders the DELETE described by the query string.
// GET /api/v1/resources/:name/delete?filter[id][eq]=...
func (h *ResourceHandler) Delete(c *gin.Context) {
	h.render(c, preview.KindDelete)
}

func (h *ResourceHandler) render(c *gin.Context, kind preview.Kind) {
	raw := h.RawQuery(c)
	res, err := h.service.Preview(c.Request.Context(), preview.Request{
		Resource: c.Param("name"),
		RawQuery: raw,
		Kind:     kind,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.PreviewResponse{Result: res, Query: raw})
}
