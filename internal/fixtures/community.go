package fixtures

import "github.com/nadji40/dolab/internal/domain"

// CommunityEvents returns the second seed set, merged after the
// flagship events in the catalog.
func CommunityEvents() []domain.Event {
	return []domain.Event{
		{
			ID: "evt-006",
			Name: domain.Localized{
				AR: "ورشة البرمجة للناشئين",
				EN: "Youth Coding Workshop",
			},
			Description: domain.Localized{
				AR: "ورشة تدريبية مكثفة لتعليم أساسيات البرمجة وتطوير التطبيقات للشباب",
				EN: "Intensive training workshop teaching programming fundamentals and app development for youth",
			},
			Date: "2024-12-20",
			Time: "14:00",
			Venue: domain.Localized{
				AR: "جامعة الملك سعود",
				EN: "King Saud University",
			},
			Location: domain.Location{
				City:    domain.Localized{AR: "الرياض", EN: "Riyadh"},
				Address: domain.Localized{AR: "حي الدرعية، طريق الملك خالد", EN: "Diriyah District, King Khalid Road"},
			},
			Category:    domain.CategoryEducational,
			Capacity:    300,
			TicketsSold: 180,
			Revenue:     18000,
			Status:      domain.EventStatusUpcoming,
			Image:       "https://images.unsplash.com/photo-1517245386807-bb43f82c33c4?w=800",
			Organizer: domain.Organizer{
				Name: domain.Localized{AR: "جامعة الملك سعود", EN: "King Saud University"},
				Type: domain.OrganizerTypeUniversity,
			},
			Tickets: []domain.TicketType{
				{
					ID:        "tkt-006-standard",
					Name:      domain.Localized{AR: "تذكرة مشارك", EN: "Participant Ticket"},
					Price:     100,
					Available: 300,
					Sold:      180,
					Features: domain.LocalizedList{
						AR: []string{"جهاز حاسب متوفر", "مواد تدريبية", "شهادة إتمام"},
						EN: []string{"Workstation provided", "Training materials", "Completion certificate"},
					},
				},
			},
		},
		{
			ID: "evt-007",
			Name: domain.Localized{
				AR: "ليالي الرياض الموسيقية",
				EN: "Riyadh Music Nights",
			},
			Description: domain.Localized{
				AR: "سلسلة حفلات موسيقية تجمع نخبة من الفنانين العرب على مسرح واحد",
				EN: "Concert series bringing top Arab artists together on one stage",
			},
			Date: "2024-11-25",
			Time: "20:00",
			Venue: domain.Localized{
				AR: "مسرح محمد عبده أرينا",
				EN: "Mohammed Abdu Arena",
			},
			Location: domain.Location{
				City:    domain.Localized{AR: "الرياض", EN: "Riyadh"},
				Address: domain.Localized{AR: "بوليفارد رياض سيتي", EN: "Boulevard Riyadh City"},
			},
			Category:    domain.CategoryEntertainment,
			Capacity:    8000,
			TicketsSold: 7200,
			Revenue:     2160000,
			Status:      domain.EventStatusActive,
			Image:       "https://images.unsplash.com/photo-1501386761578-eac5c94b800a?w=800",
			Organizer: domain.Organizer{
				Name: domain.Localized{AR: "هيئة الترفيه", EN: "General Entertainment Authority"},
				Type: domain.OrganizerTypeGovernment,
			},
			Tickets: []domain.TicketType{
				{
					ID:        "tkt-007-gold",
					Name:      domain.Localized{AR: "تذكرة ذهبية", EN: "Gold Ticket"},
					Price:     600,
					Available: 2000,
					Sold:      1900,
					Features: domain.LocalizedList{
						AR: []string{"مقاعد أمامية", "دخول مبكر", "موقف سيارات خاص"},
						EN: []string{"Front row seating", "Early entry", "Private parking"},
					},
				},
				{
					ID:        "tkt-007-silver",
					Name:      domain.Localized{AR: "تذكرة فضية", EN: "Silver Ticket"},
					Price:     250,
					Available: 6000,
					Sold:      5300,
					Features: domain.LocalizedList{
						AR: []string{"مقاعد عامة", "مشروبات مجانية"},
						EN: []string{"General seating", "Complimentary drinks"},
					},
				},
			},
		},
	}
}
