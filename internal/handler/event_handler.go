// Package handler wires the local event store to its HTTP surface
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

// EventHandler serves the event catalog
type EventHandler struct {
	store *store.Store
}

// NewEventHandler creates an event handler
func NewEventHandler(s *store.Store) *EventHandler {
	return &EventHandler{store: s}
}

// List handles GET /events. Results are filtered by the optional q and
// category parameters and rendered in the request language.
func (h *EventHandler) List(c *gin.Context) {
	category := domain.Category(c.Query("category"))
	if category != "" && !category.IsValid() {
		response.BadRequest(c, "unknown category")
		return
	}

	events, err := h.store.SearchEvents(c.Request.Context(), c.Query("q"), category)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, dto.NewEventSummaries(events, middleware.Lang(c)))
}

// Get handles GET /events/:id, returning the full bilingual record
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.store.Event(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.NotFound(c, "event not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, event)
}

// Attendees handles GET /events/:id/attendees
func (h *EventHandler) Attendees(c *gin.Context) {
	if _, err := h.store.Event(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			response.NotFound(c, "event not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	attendees, err := h.store.Attendees(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, attendees)
}
