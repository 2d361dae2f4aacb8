package dto

import (
	"testing"

	"github.com/nadji40/dolab/internal/domain"
)

func TestNewEventSummary(t *testing.T) {
	event := domain.Event{
		ID:       "evt-001",
		Name:     domain.Localized{AR: "مؤتمر", EN: "Conference"},
		Venue:    domain.Localized{AR: "مركز", EN: "Center"},
		Location: domain.Location{City: domain.Localized{AR: "الرياض", EN: "Riyadh"}},
		Tickets: []domain.TicketType{
			{ID: "t1", Price: 500},
			{ID: "t2", Price: 200},
			{ID: "t3", Price: 1500},
		},
	}

	summary := NewEventSummary(&event, domain.LangEnglish)
	if summary.Name != "Conference" {
		t.Errorf("Expected 'Conference', got '%s'", summary.Name)
	}
	if summary.City != "Riyadh" {
		t.Errorf("Expected 'Riyadh', got '%s'", summary.City)
	}
	if summary.PriceFrom != 200 {
		t.Errorf("Expected cheapest price 200, got %f", summary.PriceFrom)
	}

	arabic := NewEventSummary(&event, domain.LangArabic)
	if arabic.Name != "مؤتمر" {
		t.Errorf("Expected Arabic name, got '%s'", arabic.Name)
	}
}

func TestPurchaseTicketRequest_Validate(t *testing.T) {
	req := PurchaseTicketRequest{EventID: "evt-001", TicketTypeID: "tkt-001-vip", Quantity: 2}
	if ok, msg := req.Validate(); !ok {
		t.Errorf("Expected valid request, got %s", msg)
	}

	req.Quantity = -1
	if ok, _ := req.Validate(); ok {
		t.Error("Expected negative quantity to be rejected")
	}

	req.Quantity = 11
	if ok, _ := req.Validate(); ok {
		t.Error("Expected excessive quantity to be rejected")
	}
}

func TestUpdateSettingsRequest_Validate(t *testing.T) {
	req := UpdateSettingsRequest{Theme: "dark", Language: "ar"}
	if ok, msg := req.Validate(); !ok {
		t.Errorf("Expected valid request, got %s", msg)
	}

	req.Theme = "neon"
	if ok, _ := req.Validate(); ok {
		t.Error("Expected unknown theme to be rejected")
	}

	req.Theme = "light"
	req.Language = "fr"
	if ok, _ := req.Validate(); ok {
		t.Error("Expected unknown language to be rejected")
	}
}
