package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TicketStatus is the state of a purchased ticket
type TicketStatus string

const (
	TicketStatusActive    TicketStatus = "active"
	TicketStatusUsed      TicketStatus = "used"
	TicketStatusCancelled TicketStatus = "cancelled"
)

// AttendeeInfo is the contact snapshot captured at purchase time.
// It is a copy, not a reference to an attendee record.
type AttendeeInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PurchasedTicket is a ticket bought through the store
type PurchasedTicket struct {
	ID           string       `json:"id"`
	EventID      string       `json:"event_id"`
	TicketTypeID string       `json:"ticket_type_id"`
	PurchaseDate string       `json:"purchase_date"`
	QRCode       string       `json:"qr_code"`
	Status       TicketStatus `json:"status"`
	AttendeeInfo AttendeeInfo `json:"attendee_info"`
}

// NewTicketID builds a purchase-time ticket id from a millisecond
// timestamp.
func NewTicketID(millis int64) string {
	return fmt.Sprintf("ticket-%d", millis)
}

// TicketQR builds the scannable payload for a purchased ticket
func TicketQR(eventID, ticketTypeID string, millis int64) string {
	return fmt.Sprintf("QR-%s-%s-%d", eventID, ticketTypeID, millis)
}

// QRPayload is the decoded content of a ticket QR code
type QRPayload struct {
	EventID      string
	TicketTypeID string
	Timestamp    int64
}

// ParseQR decodes a ticket QR payload. The payload is hyphen-delimited
// and parsed positionally: the first segment is the QR marker, the last
// is the purchase timestamp in milliseconds. Event ids are two segments
// wide (e.g. evt-001); the remaining middle segments belong to the
// ticket type id. Payloads with fewer than 4 segments are invalid.
func ParseQR(code string) (*QRPayload, error) {
	parts := strings.Split(code, "-")
	if len(parts) < 4 || parts[0] != "QR" {
		return nil, ErrInvalidQRCode
	}

	millis, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return nil, ErrInvalidQRCode
	}

	mid := parts[1 : len(parts)-1]
	payload := &QRPayload{Timestamp: millis}

	switch {
	case len(mid) >= 3:
		payload.EventID = strings.Join(mid[:2], "-")
		payload.TicketTypeID = strings.Join(mid[2:], "-")
	case len(mid) == 2:
		payload.EventID = mid[0]
		payload.TicketTypeID = mid[1]
	default:
		return nil, ErrInvalidQRCode
	}

	return payload, nil
}

// DeriveAttendeeID maps a scanned QR payload to the attendee id
// convention used by the check-in flow (att-<segment1>-<segment2>).
func DeriveAttendeeID(code string) (string, error) {
	parts := strings.Split(code, "-")
	if len(parts) < 4 || parts[0] != "QR" {
		return "", ErrInvalidQRCode
	}
	return fmt.Sprintf("att-%s-%s", parts[1], parts[2]), nil
}
