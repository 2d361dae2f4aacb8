package domain

// CheckInStatus is the check-in state of an attendee.
// The store only ever produces the pending to checked-in transition;
// no-show is a valid fixture-seeded value with no producing operation.
type CheckInStatus string

const (
	CheckInPending   CheckInStatus = "pending"
	CheckInCheckedIn CheckInStatus = "checked-in"
	CheckInNoShow    CheckInStatus = "no-show"
)

// Attendee is a registered attendee of an event
type Attendee struct {
	ID               string        `json:"id"`
	Name             Localized     `json:"name"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	Company          *Localized    `json:"company,omitempty"`
	Position         *Localized    `json:"position,omitempty"`
	TicketType       string        `json:"ticket_type"`
	EventID          string        `json:"event_id"`
	RegistrationDate string        `json:"registration_date"`
	CheckInStatus    CheckInStatus `json:"check_in_status"`
	CheckInTime      string        `json:"check_in_time,omitempty"`
}
