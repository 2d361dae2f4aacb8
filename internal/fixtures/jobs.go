package fixtures

import "github.com/nadji40/dolab/internal/domain"

// DefaultJobs returns the seed job postings
func DefaultJobs() []domain.JobPosting {
	return []domain.JobPosting{
		{
			ID:         "job-001",
			Title:      domain.Localized{AR: "مطور تطبيقات الجوال", EN: "Mobile App Developer"},
			Department: domain.Localized{AR: "التقنية", EN: "Technology"},
			Location:   domain.Localized{AR: "الرياض", EN: "Riyadh"},
			Type:       domain.JobTypeFullTime,
			Description: domain.Localized{
				AR: "نبحث عن مطور تطبيقات جوال متمرس للانضمام إلى فريقنا التقني وتطوير منصة الفعاليات",
				EN: "We are looking for an experienced mobile app developer to join our technology team and build our events platform",
			},
			Requirements: domain.LocalizedList{
				AR: []string{"خبرة 3 سنوات في تطوير التطبيقات", "إتقان React Native أو Flutter", "معرفة بأنظمة إدارة الحالة"},
				EN: []string{"3 years of app development experience", "Proficiency in React Native or Flutter", "Knowledge of state management"},
			},
			Benefits: domain.LocalizedList{
				AR: []string{"تأمين طبي شامل", "بدل سكن", "عمل مرن"},
				EN: []string{"Comprehensive health insurance", "Housing allowance", "Flexible work"},
			},
			Salary:     &domain.SalaryRange{Min: 15000, Max: 25000, Currency: "SAR"},
			PostedDate: "2024-10-01",
			Deadline:   "2024-12-01",
			Status:     domain.JobStatusActive,
			Organizer: &domain.JobOrganizer{
				ID:      "org-dolab",
				Name:    domain.Localized{AR: "إيفنت دولاب", EN: "EventDolab"},
				Type:    domain.OrganizerTypeCompany,
				Website: "https://eventdolab.com",
			},
		},
		{
			ID:         "job-002",
			Title:      domain.Localized{AR: "مصمم تجربة المستخدم", EN: "UX/UI Designer"},
			Department: domain.Localized{AR: "التصميم", EN: "Design"},
			Location:   domain.Localized{AR: "جدة", EN: "Jeddah"},
			Type:       domain.JobTypeContract,
			Description: domain.Localized{
				AR: "مطلوب مصمم تجربة مستخدم لتصميم واجهات تطبيق الفعاليات باللغتين العربية والإنجليزية",
				EN: "Seeking a UX/UI designer to craft bilingual Arabic and English interfaces for our events app",
			},
			Requirements: domain.LocalizedList{
				AR: []string{"خبرة في تصميم الواجهات ثنائية الاتجاه", "إتقان Figma", "حس فني عالي"},
				EN: []string{"Experience with bidirectional interface design", "Proficiency in Figma", "Strong visual sense"},
			},
			Benefits: domain.LocalizedList{
				AR: []string{"عمل عن بعد", "مكافآت أداء"},
				EN: []string{"Remote work", "Performance bonuses"},
			},
			Salary:     &domain.SalaryRange{Min: 10000, Max: 18000, Currency: "SAR"},
			PostedDate: "2024-10-10",
			Deadline:   "2024-11-30",
			Status:     domain.JobStatusActive,
			Organizer: &domain.JobOrganizer{
				ID:   "org-dolab",
				Name: domain.Localized{AR: "إيفنت دولاب", EN: "EventDolab"},
				Type: domain.OrganizerTypeCompany,
			},
		},
	}
}
