package store

import (
	"context"
	"strings"

	"github.com/nadji40/dolab/internal/domain"
	"github.com/nadji40/dolab/internal/fixtures"
	"github.com/nadji40/dolab/internal/repository"
)

// Events returns the full event catalog. The cache is consulted first;
// on a miss the fixture sets are combined, cached, and returned.
func (s *Store) Events(ctx context.Context) ([]domain.Event, error) {
	if err := s.pause(ctx, s.cfg.ReadDelay); err != nil {
		return nil, err
	}

	var events []domain.Event
	if s.loadJSON(repository.KeyEventsCache, &events) {
		return events, nil
	}

	events = append(fixtures.SaudiEvents(), fixtures.CommunityEvents()...)
	s.saveJSON(repository.KeyEventsCache, events)
	return events, nil
}

// Event returns a single event by id
func (s *Store) Event(ctx context.Context, id string) (*domain.Event, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, domain.ErrEventNotFound
}

// SearchEvents filters the catalog by free-text query and category.
// The query matches name, description, venue, and city in both
// languages, case-insensitively. Empty arguments match everything.
func (s *Store) SearchEvents(ctx context.Context, query string, category domain.Category) ([]domain.Event, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]domain.Event, 0, len(events))
	for _, event := range events {
		if category != "" && event.Category != category {
			continue
		}
		if query != "" && !eventMatches(&event, query) {
			continue
		}
		matched = append(matched, event)
	}
	return matched, nil
}

func eventMatches(e *domain.Event, query string) bool {
	fields := []string{
		e.Name.AR, e.Name.EN,
		e.Description.AR, e.Description.EN,
		e.Venue.AR, e.Venue.EN,
		e.Location.City.AR, e.Location.City.EN,
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Organizer returns the organizer profile embedded in the event that
// carries the given organizer id.
func (s *Store) Organizer(ctx context.Context, id string) (*domain.Organizer, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].Organizer.ID == id {
			org := events[i].Organizer
			return &org, nil
		}
	}
	return nil, domain.ErrOrganizerNotFound
}

// OrganizerEvents returns every event run by the given organizer
func (s *Store) OrganizerEvents(ctx context.Context, id string) ([]domain.Event, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Event, 0, 4)
	for _, event := range events {
		if event.Organizer.ID == id {
			matched = append(matched, event)
		}
	}
	if len(matched) == 0 {
		return nil, domain.ErrOrganizerNotFound
	}
	return matched, nil
}
