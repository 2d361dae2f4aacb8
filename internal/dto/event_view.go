package dto

import "github.com/nadji40/dolab/internal/domain"

// EventSummary is the single-language event card returned by list
// endpoints. Detail endpoints return the full bilingual record.
type EventSummary struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Venue       string             `json:"venue"`
	City        string             `json:"city"`
	Category    domain.Category    `json:"category"`
	Status      domain.EventStatus `json:"status"`
	Capacity    int                `json:"capacity"`
	TicketsSold int                `json:"tickets_sold"`
	Image       string             `json:"image,omitempty"`
	Organizer   string             `json:"organizer"`
	PriceFrom   float64            `json:"price_from"`
}

// NewEventSummary renders an event card in the given language
func NewEventSummary(e *domain.Event, lang domain.Lang) EventSummary {
	summary := EventSummary{
		ID:          e.ID,
		Name:        e.Name.In(lang),
		Description: e.Description.In(lang),
		Date:        e.Date,
		Time:        e.Time,
		Venue:       e.Venue.In(lang),
		City:        e.Location.City.In(lang),
		Category:    e.Category,
		Status:      e.Status,
		Capacity:    e.Capacity,
		TicketsSold: e.TicketsSold,
		Image:       e.Image,
		Organizer:   e.Organizer.Name.In(lang),
	}
	for i, tt := range e.Tickets {
		if i == 0 || tt.Price < summary.PriceFrom {
			summary.PriceFrom = tt.Price
		}
	}
	return summary
}

// NewEventSummaries renders a list of event cards
func NewEventSummaries(events []domain.Event, lang domain.Lang) []EventSummary {
	summaries := make([]EventSummary, 0, len(events))
	for i := range events {
		summaries = append(summaries, NewEventSummary(&events[i], lang))
	}
	return summaries
}
