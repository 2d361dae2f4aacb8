package fixtures

import "github.com/nadji40/dolab/internal/domain"

// SampleAttendees returns the seed attendee registrations
func SampleAttendees() []domain.Attendee {
	return []domain.Attendee{
		{
			ID:               "att-001",
			Name:             domain.Localized{AR: "أحمد محمد العلي", EN: "Ahmed Mohammed Al-Ali"},
			Email:            "ahmed.alali@email.com",
			Phone:            "+966501234567",
			Company:          &domain.Localized{AR: "شركة أرامكو السعودية", EN: "Saudi Aramco"},
			Position:         &domain.Localized{AR: "مدير تقني", EN: "Technical Manager"},
			TicketType:       "tkt-001-vip",
			EventID:          "evt-001",
			RegistrationDate: "2024-10-15",
			CheckInStatus:    domain.CheckInPending,
		},
		{
			ID:               "att-002",
			Name:             domain.Localized{AR: "فاطمة سالم النهاس", EN: "Fatima Salem Al-Nahhas"},
			Email:            "fatima.alnahhas@email.com",
			Phone:            "+966502345678",
			Company:          &domain.Localized{AR: "جامعة الملك سعود", EN: "King Saud University"},
			Position:         &domain.Localized{AR: "أستاذة مساعدة", EN: "Assistant Professor"},
			TicketType:       "tkt-001-regular",
			EventID:          "evt-001",
			RegistrationDate: "2024-10-18",
			CheckInStatus:    domain.CheckInPending,
		},
		{
			ID:               "att-003",
			Name:             domain.Localized{AR: "خالد عبدالله الشمري", EN: "Khalid Abdullah Al-Shammari"},
			Email:            "khalid.alshammari@email.com",
			Phone:            "+966503456789",
			TicketType:       "tkt-002-family",
			EventID:          "evt-002",
			RegistrationDate: "2024-10-20",
			CheckInStatus:    domain.CheckInCheckedIn,
			CheckInTime:      "2024-11-20T16:30:00Z",
		},
	}
}
