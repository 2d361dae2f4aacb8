package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nadji40/dolab/internal/domain"
	"github.com/nadji40/dolab/internal/dto"
	"github.com/nadji40/dolab/internal/store"
	"github.com/nadji40/dolab/pkg/response"
)

// TicketHandler serves ticket purchase and listing
type TicketHandler struct {
	store *store.Store
}

// NewTicketHandler creates a ticket handler
func NewTicketHandler(s *store.Store) *TicketHandler {
	return &TicketHandler{store: s}
}

// Purchase handles POST /tickets/purchase. A declined payment returns
// 402 and the client decides whether to retry.
func (h *TicketHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "event_id and ticket_type_id are required")
		return
	}
	if ok, msg := req.Validate(); !ok {
		response.BadRequest(c, msg)
		return
	}

	purchased, err := h.store.PurchaseTicket(c.Request.Context(), &store.PurchaseRequest{
		EventID:      req.EventID,
		TicketTypeID: req.TicketTypeID,
		Quantity:     req.Quantity,
		Attendee: domain.AttendeeInfo{
			Name:  req.Attendee.Name,
			Email: req.Attendee.Email,
			Phone: req.Attendee.Phone,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			response.NotFound(c, "event not found")
		case errors.Is(err, domain.ErrTicketTypeNotFound):
			response.NotFound(c, "ticket type not found")
		case errors.Is(err, domain.ErrPaymentFailed):
			response.PaymentFailed(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, purchased)
}

// List handles GET /tickets
func (h *TicketHandler) List(c *gin.Context) {
	tickets, err := h.store.Tickets(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, tickets)
}
