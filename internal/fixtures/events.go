// Package fixtures holds the static seed data the store falls back to
// before any cache exists. Every constructor builds a fresh value, so
// callers can never mutate the seed set in place; any mutation has to
// go through the store's read-modify-write path.
package fixtures

import "github.com/nadji40/dolab/internal/domain"

// SaudiEvents returns the flagship seed events
func SaudiEvents() []domain.Event {
	return []domain.Event{
		{
			ID: "evt-001",
			Name: domain.Localized{
				AR: "مؤتمر رؤية السعودية 2030",
				EN: "Saudi Vision 2030 Conference",
			},
			Description: domain.Localized{
				AR: "مؤتمر استراتيجي يناقش مستقبل المملكة العربية السعودية وخطط التنمية المستدامة",
				EN: "Strategic conference discussing the future of Saudi Arabia and sustainable development plans",
			},
			Date: "2024-12-15",
			Time: "09:00",
			Venue: domain.Localized{
				AR: "مركز الملك عبدالعزيز للمؤتمرات",
				EN: "King Abdulaziz Conference Center",
			},
			Location: domain.Location{
				City:    domain.Localized{AR: "الرياض", EN: "Riyadh"},
				Address: domain.Localized{AR: "حي الملز، الرياض 12211", EN: "Al Malaz District, Riyadh 12211"},
			},
			Category:    domain.CategoryBusiness,
			Capacity:    2000,
			TicketsSold: 1750,
			Revenue:     875000,
			Status:      domain.EventStatusUpcoming,
			Image:       "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800",
			Organizer: domain.Organizer{
				ID:   "org-001",
				Name: domain.Localized{AR: "وزارة الاقتصاد والتخطيط", EN: "Ministry of Economy and Planning"},
				Type: domain.OrganizerTypeGovernment,
				Bio: &domain.Localized{
					AR: "وزارة الاقتصاد والتخطيط هي الجهة المسؤولة عن وضع السياسات الاقتصادية والتنموية في المملكة العربية السعودية",
					EN: "The Ministry of Economy and Planning is responsible for setting economic and development policies in Saudi Arabia",
				},
				Logo:    "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=200",
				Website: "https://mep.gov.sa",
				Email:   "info@mep.gov.sa",
				Phone:   "+966-11-4014444",
				SocialLinks: &domain.SocialLinks{
					Twitter:  "https://twitter.com/mep_saudi",
					LinkedIn: "https://linkedin.com/company/mep-saudi",
				},
				Address:         &domain.Localized{AR: "الرياض، المملكة العربية السعودية", EN: "Riyadh, Saudi Arabia"},
				EstablishedYear: 1975,
				TeamSize:        500,
				Specialties: &domain.LocalizedList{
					AR: []string{"التخطيط الاقتصادي", "السياسات التنموية", "رؤية 2030"},
					EN: []string{"Economic Planning", "Development Policies", "Vision 2030"},
				},
				Stats: &domain.OrganizerStats{
					TotalEvents:    45,
					TotalAttendees: 25000,
					AverageRating:  4.8,
					YearsActive:    48,
				},
				Posts: []domain.OrganizerPost{
					{
						ID: "post-001",
						Title: domain.Localized{
							AR: "إطلاق مبادرة جديدة لدعم الشركات الناشئة",
							EN: "Launching New Initiative to Support Startups",
						},
						Content: domain.Localized{
							AR: "أعلنت وزارة الاقتصاد والتخطيط عن إطلاق مبادرة جديدة لدعم الشركات الناشئة في إطار رؤية 2030",
							EN: "The Ministry of Economy and Planning announced the launch of a new initiative to support startups as part of Vision 2030",
						},
						Image:         "https://images.unsplash.com/photo-1556761175-b413da4baf72?w=400",
						PublishedDate: "2024-10-20",
						Tags:          []string{"startups", "vision2030", "economy"},
					},
				},
			},
			Tickets: []domain.TicketType{
				{
					ID:        "tkt-001-vip",
					Name:      domain.Localized{AR: "تذكرة كبار الشخصيات", EN: "VIP Ticket"},
					Price:     1500,
					Available: 50,
					Sold:      45,
					Features: domain.LocalizedList{
						AR: []string{"مقاعد مميزة", "وجبة غداء فاخرة", "لقاء مع المتحدثين", "هدايا تذكارية"},
						EN: []string{"Premium seating", "Luxury lunch", "Meet & greet with speakers", "Commemorative gifts"},
					},
				},
				{
					ID:        "tkt-001-regular",
					Name:      domain.Localized{AR: "تذكرة عادية", EN: "Regular Ticket"},
					Price:     500,
					Available: 1500,
					Sold:      1200,
					Features: domain.LocalizedList{
						AR: []string{"مقعد عادي", "استراحة قهوة", "مواد المؤتمر"},
						EN: []string{"Standard seating", "Coffee break", "Conference materials"},
					},
				},
				{
					ID:        "tkt-001-student",
					Name:      domain.Localized{AR: "تذكرة طلابية", EN: "Student Ticket"},
					Price:     200,
					Available: 450,
					Sold:      350,
					Features: domain.LocalizedList{
						AR: []string{"مقعد عادي", "استراحة قهوة", "شهادة حضور"},
						EN: []string{"Standard seating", "Coffee break", "Attendance certificate"},
					},
				},
			},
		},
		{
			ID: "evt-002",
			Name: domain.Localized{
				AR: "مهرجان الجنادرية الثقافي",
				EN: "Janadriyah Cultural Festival",
			},
			Description: domain.Localized{
				AR: "مهرجان ثقافي سنوي يحتفي بالتراث السعودي والثقافة العربية الأصيلة",
				EN: "Annual cultural festival celebrating Saudi heritage and authentic Arab culture",
			},
			Date: "2024-11-20",
			Time: "16:00",
			Venue: domain.Localized{
				AR: "قرية الجنادرية التراثية",
				EN: "Janadriyah Heritage Village",
			},
			Location: domain.Location{
				City:    domain.Localized{AR: "الرياض", EN: "Riyadh"},
				Address: domain.Localized{AR: "شمال شرق الرياض، طريق الملك خالد", EN: "Northeast Riyadh, King Khalid Road"},
			},
			Category:    domain.CategoryCultural,
			Capacity:    5000,
			TicketsSold: 4200,
			Revenue:     630000,
			Status:      domain.EventStatusActive,
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800",
			Organizer: domain.Organizer{
				Name: domain.Localized{AR: "وزارة الثقافة", EN: "Ministry of Culture"},
				Type: domain.OrganizerTypeGovernment,
			},
			Tickets: []domain.TicketType{
				{
					ID:        "tkt-002-family",
					Name:      domain.Localized{AR: "تذكرة عائلية", EN: "Family Ticket"},
					Price:     300,
					Available: 2000,
					Sold:      1800,
					Features: domain.LocalizedList{
						AR: []string{"دخول لـ 4 أشخاص", "أنشطة للأطفال", "وجبات تراثية"},
						EN: []string{"Entry for 4 people", "Children activities", "Traditional meals"},
					},
				},
				{
					ID:        "tkt-002-individual",
					Name:      domain.Localized{AR: "تذكرة فردية", EN: "Individual Ticket"},
					Price:     100,
					Available: 3000,
					Sold:      2400,
					Features: domain.LocalizedList{
						AR: []string{"دخول فردي", "جولة إرشادية", "عروض فولكلورية"},
						EN: []string{"Individual entry", "Guided tour", "Folklore shows"},
					},
				},
			},
		},
		{
			ID: "evt-003",
			Name: domain.Localized{
				AR: "قمة نيوم للتكنولوجيا",
				EN: "NEOM Technology Summit",
			},
			Description: domain.Localized{
				AR: "قمة تقنية عالمية تستكشف مستقبل التكنولوجيا والابتكار في مدينة نيوم",
				EN: "Global technology summit exploring the future of technology and innovation in NEOM city",
			},
			Date: "2024-12-05",
			Time: "10:00",
			Venue: domain.Localized{
				AR: "مركز نيوم للمؤتمرات",
				EN: "NEOM Conference Center",
			},
			Location: domain.Location{
				City:    domain.Localized{AR: "نيوم", EN: "NEOM"},
				Address: domain.Localized{AR: "منطقة تبوك، شمال غرب السعودية", EN: "Tabuk Province, Northwest Saudi Arabia"},
			},
			Category:    domain.CategoryBusiness,
			Capacity:    1500,
			TicketsSold: 1200,
			Revenue:     1800000,
			Status:      domain.EventStatusUpcoming,
			Image:       "https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=800",
			Organizer: domain.Organizer{
				Name: domain.Localized{AR: "شركة نيوم", EN: "NEOM Company"},
				Type: domain.OrganizerTypeCompany,
			},
			Tickets: []domain.TicketType{
				{
					ID:        "tkt-003-premium",
					Name:      domain.Localized{AR: "تذكرة بريميوم", EN: "Premium Ticket"},
					Price:     2000,
					Available: 300,
					Sold:      250,
					Features: domain.LocalizedList{
						AR: []string{"ورش عمل حصرية", "لقاءات شخصية", "جولة في نيوم", "إقامة فندقية"},
						EN: []string{"Exclusive workshops", "Personal meetings", "NEOM tour", "Hotel accommodation"},
					},
				},
				{
					ID:        "tkt-003-standard",
					Name:      domain.Localized{AR: "تذكرة قياسية", EN: "Standard Ticket"},
					Price:     1000,
					Available: 1200,
					Sold:      950,
					Features: domain.LocalizedList{
						AR: []string{"حضور الجلسات الرئيسية", "معرض التكنولوجيا", "وجبات خفيفة"},
						EN: []string{"Main sessions access", "Technology exhibition", "Light refreshments"},
					},
				},
			},
		},
		{
			ID: "evt-004",
			Name: domain.Localized{
				AR: "ملتقى ريادة الأعمال السعودي",
				EN: "Saudi Entrepreneurship Forum",
			},
			Description: domain.Localized{
				AR: "ملتقى سنوي يجمع رواد الأعمال والمستثمرين لمناقشة فرص الاستثمار والابتكار",
				EN: "Annual forum bringing together entrepreneurs and investors to discuss investment and innovation opportunities",
			},
			Date: "2024-11-30",
			Time: "08:30",
			Venue: domain.Localized{
				AR: "مركز الرياض الدولي للمؤتمرات والمعارض",
				EN: "Riyadh International Convention & Exhibition Center",
			},
			Location: domain.Location{
				City:    domain.Localized{AR: "الرياض", EN: "Riyadh"},
				Address: domain.Localized{AR: "طريق الملك عبدالعزيز، حي المعذر", EN: "King Abdulaziz Road, Al Maather District"},
			},
			Category:    domain.CategoryBusiness,
			Capacity:    3000,
			TicketsSold: 2500,
			Revenue:     1250000,
			Status:      domain.EventStatusUpcoming,
			Image:       "https://images.unsplash.com/photo-1515187029135-18ee286d815b?w=800",
			Organizer: domain.Organizer{
				Name: domain.Localized{AR: "الهيئة العامة للمنشآت الصغيرة والمتوسطة", EN: "Small and Medium Enterprises General Authority"},
				Type: domain.OrganizerTypeGovernment,
			},
			Tickets: []domain.TicketType{
				{
					ID:        "tkt-004-investor",
					Name:      domain.Localized{AR: "تذكرة المستثمرين", EN: "Investor Ticket"},
					Price:     800,
					Available: 500,
					Sold:      400,
					Features: domain.LocalizedList{
						AR: []string{"جلسات حصرية للمستثمرين", "لقاءات B2B", "تقارير السوق"},
						EN: []string{"Exclusive investor sessions", "B2B meetings", "Market reports"},
					},
				},
				{
					ID:        "tkt-004-entrepreneur",
					Name:      domain.Localized{AR: "تذكرة رواد الأعمال", EN: "Entrepreneur Ticket"},
					Price:     400,
					Available: 2000,
					Sold:      1700,
					Features: domain.LocalizedList{
						AR: []string{"ورش عمل تدريبية", "جلسات الإرشاد", "معرض الشركات الناشئة"},
						EN: []string{"Training workshops", "Mentoring sessions", "Startup exhibition"},
					},
				},
				{
					ID:        "tkt-004-student",
					Name:      domain.Localized{AR: "تذكرة طلابية", EN: "Student Ticket"},
					Price:     150,
					Available: 500,
					Sold:      400,
					Features: domain.LocalizedList{
						AR: []string{"حضور المحاضرات", "مسابقات الابتكار", "شهادة مشاركة"},
						EN: []string{"Lecture attendance", "Innovation competitions", "Participation certificate"},
					},
				},
			},
		},
		{
			ID: "evt-005",
			Name: domain.Localized{
				AR: "معرض الكتاب الدولي بالرياض",
				EN: "Riyadh International Book Fair",
			},
			Description: domain.Localized{
				AR: "معرض سنوي للكتب يضم دور نشر عربية وعالمية مع فعاليات ثقافية متنوعة",
				EN: "Annual book fair featuring Arab and international publishers with diverse cultural activities",
			},
			Date: "2024-12-10",
			Time: "10:00",
			Venue: domain.Localized{
				AR: "مركز الرياض للمعارض",
				EN: "Riyadh Exhibition Center",
			},
			Location: domain.Location{
				City:    domain.Localized{AR: "الرياض", EN: "Riyadh"},
				Address: domain.Localized{AR: "طريق خريص، حي المعذر الشمالي", EN: "Khurais Road, North Al Maather District"},
			},
			Category:    domain.CategoryCultural,
			Capacity:    10000,
			TicketsSold: 8500,
			Revenue:     425000,
			Status:      domain.EventStatusUpcoming,
			Image:       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=800",
			Organizer: domain.Organizer{
				Name: domain.Localized{AR: "وزارة الثقافة", EN: "Ministry of Culture"},
				Type: domain.OrganizerTypeGovernment,
			},
			Tickets: []domain.TicketType{
				{
					ID:        "tkt-005-daily",
					Name:      domain.Localized{AR: "تذكرة يومية", EN: "Daily Ticket"},
					Price:     50,
					Available: 8000,
					Sold:      6500,
					Features: domain.LocalizedList{
						AR: []string{"دخول ليوم واحد", "فعاليات ثقافية", "خصومات على الكتب"},
						EN: []string{"One day entry", "Cultural activities", "Book discounts"},
					},
				},
				{
					ID:        "tkt-005-season",
					Name:      domain.Localized{AR: "تذكرة موسمية", EN: "Season Ticket"},
					Price:     200,
					Available: 2000,
					Sold:      1800,
					Features: domain.LocalizedList{
						AR: []string{"دخول لكامل المعرض", "أمسيات شعرية", "لقاءات مع المؤلفين", "خصومات إضافية"},
						EN: []string{"Full fair access", "Poetry evenings", "Author meetings", "Additional discounts"},
					},
				},
				{
					ID:        "tkt-005-student",
					Name:      domain.Localized{AR: "تذكرة طلابية", EN: "Student Ticket"},
					Price:     25,
					Available: 1000,
					Sold:      800,
					Features: domain.LocalizedList{
						AR: []string{"دخول مخفض", "ورش كتابة", "مسابقات أدبية"},
						EN: []string{"Discounted entry", "Writing workshops", "Literary competitions"},
					},
				},
			},
		},
	}
}
