package handlers

import (
	"github.com/gin-gonic/gin"

	"sieve/internal/domain/preview"
	"sieve/internal/domain/query"
	"sieve/internal/domain/users"
	"sieve/internal/infrastructure/http/v1/dto"
)

// UsersHandler renders statements for the users table through its
// statically declared filter group.
type UsersHandler struct {
	*BaseHandler
	cfg query.Config
}

// NewUsersHandler creates a users handler.
func NewUsersHandler(base *BaseHandler, cfg query.Config) *UsersHandler {
	return &UsersHandler{BaseHandler: base, cfg: cfg}
}

// Query renders the SELECT described by the query string.
// GET /api/v1/users/query
func (h *UsersHandler) Query(c *gin.Context) {
	h.render(c, preview.KindSelect)
}

// Delete renders the DELETE described by the query string.
// GET /api/v1/users/delete
func (h *UsersHandler) Delete(c *gin.Context) {
	h.render(c, preview.KindDelete)
}

func (h *UsersHandler) render(c *gin.Context, kind preview.Kind) {
	raw := h.RawQuery(c)
	q, err := query.Parse[users.Filter](raw)
	if err != nil {
		h.Error(c, err)
		return
	}
	q.Config = h.cfg

	res, err := preview.Render(kind, users.Table, nil, q)
	if err != nil {
		h.Error(c, err)
		return
	}
	res.Resource = users.Resource
	h.OK(c, dto.PreviewResponse{Result: res, Query: raw})
}
