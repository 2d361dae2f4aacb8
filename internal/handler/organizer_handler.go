package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nadji40/dolab/internal/domain"
	"github.com/nadji40/dolab/internal/dto"
	"github.com/nadji40/dolab/internal/middleware"
	"github.com/nadji40/dolab/internal/store"
	"github.com/nadji40/dolab/pkg/response"
)

// OrganizerHandler serves organizer profiles
type OrganizerHandler struct {
	store *store.Store
}

// NewOrganizerHandler creates an organizer handler
func NewOrganizerHandler(s *store.Store) *OrganizerHandler {
	return &OrganizerHandler{store: s}
}

// Get handles GET /organizers/:id
func (h *OrganizerHandler) Get(c *gin.Context) {
	org, err := h.store.Organizer(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrganizerNotFound) {
			response.NotFound(c, "organizer not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, org)
}

// Events handles GET /organizers/:id/events
func (h *OrganizerHandler) Events(c *gin.Context) {
	events, err := h.store.OrganizerEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrganizerNotFound) {
			response.NotFound(c, "organizer not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, dto.NewEventSummaries(events, middleware.Lang(c)))
}
