package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nadji40/dolab/internal/domain"
	"github.com/nadji40/dolab/internal/dto"
	"github.com/nadji40/dolab/internal/store"
	"github.com/nadji40/dolab/pkg/response"
)

// AttendeeHandler serves attendee listing and check-in
type AttendeeHandler struct {
	store *store.Store
}

// NewAttendeeHandler creates an attendee handler
func NewAttendeeHandler(s *store.Store) *AttendeeHandler {
	return &AttendeeHandler{store: s}
}

// List handles GET /attendees with an optional event_id filter
func (h *AttendeeHandler) List(c *gin.Context) {
	attendees, err := h.store.Attendees(c.Request.Context(), c.Query("event_id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, attendees)
}

// CheckIn handles POST /attendees/:id/checkin
func (h *AttendeeHandler) CheckIn(c *gin.Context) {
	attendee, err := h.store.CheckIn(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAttendeeNotFound) {
			response.NotFound(c, "attendee not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, attendee)
}

// Scan handles POST /checkin/scan, checking in the attendee a ticket
// QR payload maps to.
func (h *AttendeeHandler) Scan(c *gin.Context) {
	var req dto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "qr_code is required")
		return
	}

	attendee, err := h.store.ScanQR(c.Request.Context(), req.QRCode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQRCode):
			response.BadRequest(c, "invalid qr code")
		case errors.Is(err, domain.ErrAttendeeNotFound):
			response.NotFound(c, "attendee not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, attendee)
}
