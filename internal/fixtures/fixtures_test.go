package fixtures

import (
	"strings"
	"testing"

	"github.com/nadji40/dolab/internal/domain"
)

func TestSaudiEvents_Consistency(t *testing.T) {
	events := SaudiEvents()

	if len(events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(events))
	}

	for _, event := range events {
		if event.TicketsSold > event.Capacity {
			t.Errorf("Event %s: tickets sold %d exceeds capacity %d", event.ID, event.TicketsSold, event.Capacity)
		}
		if !event.Category.IsValid() {
			t.Errorf("Event %s: invalid category %q", event.ID, event.Category)
		}
		if event.Name.AR == "" || event.Name.EN == "" {
			t.Errorf("Event %s: missing localized name", event.ID)
		}
		for _, tt := range event.Tickets {
			if tt.Sold > tt.Available {
				t.Errorf("Ticket %s: sold %d exceeds available %d", tt.ID, tt.Sold, tt.Available)
			}
		}
	}
}

func TestSaudiEvents_Flagship(t *testing.T) {
	events := SaudiEvents()

	first := events[0]
	if first.ID != "evt-001" {
		t.Fatalf("Expected evt-001 first, got %s", first.ID)
	}
	if first.Category != domain.CategoryBusiness {
		t.Errorf("Expected business category, got %s", first.Category)
	}
	if len(first.Tickets) != 3 {
		t.Errorf("Expected 3 ticket types, got %d", len(first.Tickets))
	}
	if first.Organizer.ID != "org-001" {
		t.Errorf("Expected organizer org-001, got %s", first.Organizer.ID)
	}
	if len(first.Organizer.Posts) != 1 {
		t.Errorf("Expected 1 organizer post, got %d", len(first.Organizer.Posts))
	}
}

func TestSaudiEvents_NEOM(t *testing.T) {
	var matches int
	for _, event := range SaudiEvents() {
		if strings.Contains(strings.ToLower(event.Name.EN), "neom") {
			matches++
		}
	}
	if matches != 1 {
		t.Errorf("Expected exactly one NEOM event, got %d", matches)
	}
}

func TestSaudiEvents_FreshCopies(t *testing.T) {
	a := SaudiEvents()
	a[0].Name.EN = "mutated"
	a[0].Tickets[0].Sold = 99999

	b := SaudiEvents()
	if b[0].Name.EN == "mutated" {
		t.Error("Expected fixture events to be independent copies")
	}
	if b[0].Tickets[0].Sold == 99999 {
		t.Error("Expected fixture ticket slices to be independent copies")
	}
}

func TestCommunityEvents(t *testing.T) {
	events := CommunityEvents()

	if len(events) != 2 {
		t.Fatalf("Expected 2 community events, got %d", len(events))
	}
	seen := map[string]bool{}
	for _, event := range SaudiEvents() {
		seen[event.ID] = true
	}
	for _, event := range events {
		if seen[event.ID] {
			t.Errorf("Community event %s collides with a flagship event id", event.ID)
		}
		if !event.Category.IsValid() {
			t.Errorf("Event %s: invalid category %q", event.ID, event.Category)
		}
	}
}

func TestSampleAttendees(t *testing.T) {
	attendees := SampleAttendees()

	if len(attendees) != 3 {
		t.Fatalf("Expected 3 attendees, got %d", len(attendees))
	}

	var checkedIn int
	for _, att := range attendees {
		if att.CheckInStatus == domain.CheckInCheckedIn {
			checkedIn++
			if att.CheckInTime == "" {
				t.Errorf("Attendee %s checked in without a check-in time", att.ID)
			}
		}
	}
	if checkedIn != 1 {
		t.Errorf("Expected exactly one checked-in attendee, got %d", checkedIn)
	}
}

func TestDefaultTeamAndJobs(t *testing.T) {
	team := DefaultTeam()
	if len(team) != 3 {
		t.Errorf("Expected 3 team members, got %d", len(team))
	}
	for _, member := range team {
		if !strings.HasSuffix(member.Email, "@eventdolab.com") {
			t.Errorf("Member %s: unexpected email domain %s", member.ID, member.Email)
		}
	}

	jobs := DefaultJobs()
	if len(jobs) != 2 {
		t.Errorf("Expected 2 job postings, got %d", len(jobs))
	}
	for _, job := range jobs {
		if job.Salary == nil || job.Salary.Currency != "SAR" {
			t.Errorf("Job %s: expected SAR salary range", job.ID)
		}
		if job.Status != domain.JobStatusActive {
			t.Errorf("Job %s: expected active status, got %s", job.ID, job.Status)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Theme != domain.ThemeDark {
		t.Errorf("Expected dark theme, got %s", settings.Theme)
	}
	if settings.Language != domain.LangArabic {
		t.Errorf("Expected Arabic language, got %s", settings.Language)
	}
	if !settings.Notifications || !settings.AutoSync {
		t.Error("Expected notifications and auto sync enabled by default")
	}
}
