package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nadji40/dolab/internal/domain"
	"github.com/nadji40/dolab/internal/gateway"
	"github.com/nadji40/dolab/internal/repository"
)

// PurchaseRequest describes one ticket purchase
type PurchaseRequest struct {
	EventID      string
	TicketTypeID string
	Quantity     int
	Attendee     domain.AttendeeInfo
}

// PurchaseTicket buys tickets for an event. The event and ticket type
// must exist; the charge goes through the payment gateway and a
// declined charge surfaces as ErrPaymentFailed without retry. The sold
// counters on the event record are intentionally left untouched.
func (s *Store) PurchaseTicket(ctx context.Context, req *PurchaseRequest) ([]domain.PurchasedTicket, error) {
	if err := s.pause(ctx, s.cfg.PurchaseDelay); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	event, err := s.Event(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	ticketType := event.TicketType(req.TicketTypeID)
	if ticketType == nil {
		return nil, domain.ErrTicketTypeNotFound
	}

	charge := &gateway.ChargeRequest{
		EventID:      req.EventID,
		TicketTypeID: req.TicketTypeID,
		Quantity:     quantity,
		Amount:       ticketType.Price * float64(quantity),
		Currency:     "SAR",
	}
	if _, err := s.gw.Charge(ctx, charge); err != nil {
		s.log.Info("payment declined",
			zap.String("event_id", req.EventID),
			zap.String("ticket_type_id", req.TicketTypeID),
			zap.Error(err))
		return nil, domain.ErrPaymentFailed
	}

	now := s.now()
	purchased := make([]domain.PurchasedTicket, 0, quantity)
	for i := 0; i < quantity; i++ {
		millis := now.UnixMilli() + int64(i)
		purchased = append(purchased, domain.PurchasedTicket{
			ID:           domain.NewTicketID(millis),
			EventID:      req.EventID,
			TicketTypeID: req.TicketTypeID,
			PurchaseDate: now.UTC().Format(time.RFC3339),
			QRCode:       domain.TicketQR(req.EventID, req.TicketTypeID, millis),
			Status:       domain.TicketStatusActive,
			AttendeeInfo: req.Attendee,
		})
	}

	mu := s.keyLock(repository.KeyTicketsCache)
	mu.Lock()
	defer mu.Unlock()

	var existing []domain.PurchasedTicket
	s.loadJSON(repository.KeyTicketsCache, &existing)
	s.saveJSON(repository.KeyTicketsCache, append(existing, purchased...))

	return purchased, nil
}

// Tickets returns every ticket purchased through the store
func (s *Store) Tickets(ctx context.Context) ([]domain.PurchasedTicket, error) {
	if err := s.pause(ctx, s.cfg.ReadDelay); err != nil {
		return nil, err
	}

	tickets := []domain.PurchasedTicket{}
	s.loadJSON(repository.KeyTicketsCache, &tickets)
	return tickets, nil
}
