package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nadji40/dolab/internal/dto"
	"github.com/nadji40/dolab/internal/store"
	"github.com/nadji40/dolab/pkg/response"
)

// SettingsHandler serves user settings, sync, and cache administration
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler creates a settings handler
func NewSettingsHandler(s *store.Store) *SettingsHandler {
	return &SettingsHandler{store: s}
}

// Get handles GET /settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.store.Settings(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, settings)
}

// Update handles PUT /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "theme and language are required")
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	settings := req.ToSettings()
	if err := h.store.UpdateSettings(c.Request.Context(), settings); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, settings)
}

// Sync handles POST /sync
func (h *SettingsHandler) Sync(c *gin.Context) {
	syncedAt, err := h.store.Sync(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"synced_at": syncedAt.Format(time.RFC3339)})
}

// LastSync handles GET /sync/last. A zero timestamp means no sync has
// completed yet.
func (h *SettingsHandler) LastSync(c *gin.Context) {
	last, err := h.store.LastSync(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if last.IsZero() {
		response.Success(c, gin.H{"synced_at": nil})
		return
	}
	response.Success(c, gin.H{"synced_at": last.Format(time.RFC3339)})
}

// ResetCache handles POST /admin/cache/reset
func (h *SettingsHandler) ResetCache(c *gin.Context) {
	if err := h.store.ResetCache(c.Request.Context()); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"reset": true})
}
