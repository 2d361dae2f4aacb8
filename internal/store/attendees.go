package store

import (
	"context"
	"time"

	"github.com/nadji40/dolab/internal/domain"
	"github.com/nadji40/dolab/internal/fixtures"
	"github.com/nadji40/dolab/internal/repository"
)

// Attendees returns registered attendees, optionally filtered by event
func (s *Store) Attendees(ctx context.Context, eventID string) ([]domain.Attendee, error) {
	if err := s.pause(ctx, s.cfg.ReadDelay); err != nil {
		return nil, err
	}

	attendees := s.attendeeSnapshot()
	if eventID == "" {
		return attendees, nil
	}

	matched := make([]domain.Attendee, 0, len(attendees))
	for _, att := range attendees {
		if att.EventID == eventID {
			matched = append(matched, att)
		}
	}
	return matched, nil
}

// CheckIn marks an attendee as checked in and stamps the check-in
// time. Checking in an already checked-in attendee refreshes the
// timestamp rather than failing.
func (s *Store) CheckIn(ctx context.Context, attendeeID string) (*domain.Attendee, error) {
	if err := s.pause(ctx, s.cfg.ReadDelay); err != nil {
		return nil, err
	}

	mu := s.keyLock(repository.KeyAttendeesCache)
	mu.Lock()
	defer mu.Unlock()

	attendees := s.attendeeSnapshot()
	for i := range attendees {
		if attendees[i].ID != attendeeID {
			continue
		}
		attendees[i].CheckInStatus = domain.CheckInCheckedIn
		attendees[i].CheckInTime = s.now().UTC().Format(time.RFC3339)
		s.saveJSON(repository.KeyAttendeesCache, attendees)

		updated := attendees[i]
		return &updated, nil
	}
	return nil, domain.ErrAttendeeNotFound
}

// ScanQR decodes a ticket QR payload and checks in the attendee it
// maps to.
func (s *Store) ScanQR(ctx context.Context, code string) (*domain.Attendee, error) {
	attendeeID, err := domain.DeriveAttendeeID(code)
	if err != nil {
		return nil, err
	}
	return s.CheckIn(ctx, attendeeID)
}

// attendeeSnapshot loads the attendee list from cache, falling back to
// the fixture registrations. Callers needing write consistency hold
// the attendees key lock around this.
func (s *Store) attendeeSnapshot() []domain.Attendee {
	var attendees []domain.Attendee
	if s.loadJSON(repository.KeyAttendeesCache, &attendees) {
		return attendees
	}
	attendees = fixtures.SampleAttendees()
	s.saveJSON(repository.KeyAttendeesCache, attendees)
	return attendees
}
