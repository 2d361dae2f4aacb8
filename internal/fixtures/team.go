package fixtures

import "github.com/nadji40/dolab/internal/domain"

// DefaultTeam returns the seed workspace team members
func DefaultTeam() []domain.TeamMember {
	return []domain.TeamMember{
		{
			ID:          "team-001",
			Name:        domain.Localized{AR: "سارة أحمد القحطاني", EN: "Sara Ahmed Al-Qahtani"},
			Email:       "sara@eventdolab.com",
			Role:        domain.Localized{AR: "مديرة الفعاليات", EN: "Events Manager"},
			Permissions: []string{"events.manage", "attendees.manage", "analytics.view"},
			Avatar:      "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200",
			IsActive:    true,
		},
		{
			ID:          "team-002",
			Name:        domain.Localized{AR: "محمد علي الدوسري", EN: "Mohammed Ali Al-Dosari"},
			Email:       "mohammed@eventdolab.com",
			Role:        domain.Localized{AR: "منسق تسجيل", EN: "Registration Coordinator"},
			Permissions: []string{"attendees.manage", "checkin.scan"},
			Avatar:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200",
			IsActive:    true,
		},
		{
			ID:          "team-003",
			Name:        domain.Localized{AR: "نورة خالد العتيبي", EN: "Noura Khalid Al-Otaibi"},
			Email:       "noura@eventdolab.com",
			Role:        domain.Localized{AR: "محللة بيانات", EN: "Data Analyst"},
			Permissions: []string{"analytics.view", "reports.export"},
			Avatar:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200",
			IsActive:    false,
		},
	}
}
