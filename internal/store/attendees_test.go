package store

import (
	"context"
	"errors"
	"testing"

	"github.com/nadji40/dolab/internal/domain"
)

func TestAttendees_All(t *testing.T) {
	s, _, _ := newTestStore()

	attendees, err := s.Attendees(context.Background(), "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(attendees) != 3 {
		t.Fatalf("Expected 3 attendees, got %d", len(attendees))
	}
}

func TestAttendees_FilterByEvent(t *testing.T) {
	s, _, _ := newTestStore()

	attendees, err := s.Attendees(context.Background(), "evt-001")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(attendees) != 2 {
		t.Fatalf("Expected 2 attendees for evt-001, got %d", len(attendees))
	}
	for _, att := range attendees {
		if att.EventID != "evt-001" {
			t.Errorf("Attendee %s: expected evt-001, got %s", att.ID, att.EventID)
		}
	}
}

func TestCheckIn(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	att, err := s.CheckIn(ctx, "att-001")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if att.CheckInStatus != domain.CheckInCheckedIn {
		t.Errorf("Expected checked-in status, got %s", att.CheckInStatus)
	}
	if att.CheckInTime != "2024-12-05T10:00:00Z" {
		t.Errorf("Unexpected check-in time: %s", att.CheckInTime)
	}

	// The transition must be persisted
	attendees, _ := s.Attendees(ctx, "evt-001")
	for _, a := range attendees {
		if a.ID == "att-001" && a.CheckInStatus != domain.CheckInCheckedIn {
			t.Error("Expected persisted check-in state")
		}
	}
}

func TestCheckIn_Unknown(t *testing.T) {
	s, _, _ := newTestStore()

	if _, err := s.CheckIn(context.Background(), "att-999"); !errors.Is(err, domain.ErrAttendeeNotFound) {
		t.Errorf("Expected ErrAttendeeNotFound, got %v", err)
	}
}

func TestCheckIn_AlreadyCheckedIn(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	// att-003 ships already checked in; a second check-in refreshes
	// the timestamp instead of failing
	att, err := s.CheckIn(ctx, "att-003")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if att.CheckInStatus != domain.CheckInCheckedIn {
		t.Errorf("Expected checked-in status, got %s", att.CheckInStatus)
	}
	if att.CheckInTime != "2024-12-05T10:00:00Z" {
		t.Errorf("Expected refreshed timestamp, got %s", att.CheckInTime)
	}
}

func TestScanQR(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	// Seed an attendee whose id matches the scan derivation for this payload
	attendees, _ := s.Attendees(ctx, "")
	attendees = append(attendees, domain.Attendee{
		ID:            "att-evt-001",
		Name:          domain.Localized{AR: "ضيف", EN: "Guest"},
		EventID:       "evt-001",
		TicketType:    "tkt-001-regular",
		CheckInStatus: domain.CheckInPending,
	})
	s.saveJSON("attendees_cache", attendees)

	att, err := s.ScanQR(ctx, "QR-evt-001-tkt-001-regular-1733392800000")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if att.ID != "att-evt-001" {
		t.Errorf("Expected att-evt-001, got %s", att.ID)
	}
	if att.CheckInStatus != domain.CheckInCheckedIn {
		t.Errorf("Expected checked-in status, got %s", att.CheckInStatus)
	}
}

func TestScanQR_InvalidPayload(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	cases := []string{"", "QR-evt-001", "garbage", "XX-evt-001-tkt-1"}
	for _, code := range cases {
		if _, err := s.ScanQR(ctx, code); !errors.Is(err, domain.ErrInvalidQRCode) {
			t.Errorf("Payload %q: expected ErrInvalidQRCode, got %v", code, err)
		}
	}
}

func TestScanQR_UnknownAttendee(t *testing.T) {
	s, _, _ := newTestStore()

	_, err := s.ScanQR(context.Background(), "QR-evt-999-tkt-999-x-1733392800000")
	if !errors.Is(err, domain.ErrAttendeeNotFound) {
		t.Errorf("Expected ErrAttendeeNotFound, got %v", err)
	}
}
