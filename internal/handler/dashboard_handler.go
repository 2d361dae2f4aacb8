package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nadji40/dolab/internal/store"
	"github.com/nadji40/dolab/pkg/response"
)

// DashboardHandler serves the analytics summary
type DashboardHandler struct {
	store *store.Store
}

// NewDashboardHandler creates a dashboard handler
func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// Analytics handles GET /analytics
func (h *DashboardHandler) Analytics(c *gin.Context) {
	summary, err := h.store.Analytics(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, summary)
}
