package domain

// AnalyticsSummary is the dashboard aggregate computed over an event
// set. It is always derived from a snapshot, never maintained
// incrementally.
type AnalyticsSummary struct {
	TotalEvents           int              `json:"total_events"`
	ActiveEvents          int              `json:"active_events"`
	UpcomingEvents        int              `json:"upcoming_events"`
	CompletedEvents       int              `json:"completed_events"`
	TotalRevenue          float64          `json:"total_revenue"`
	TotalAttendees        int              `json:"total_attendees"`
	AverageAttendanceRate float64          `json:"average_attendance_rate"`
	CategoryBreakdown     map[Category]int `json:"category_breakdown"`
}

// ComputeAnalytics derives the dashboard summary from a set of events
func ComputeAnalytics(events []Event) AnalyticsSummary {
	summary := AnalyticsSummary{
		TotalEvents:       len(events),
		CategoryBreakdown: make(map[Category]int, len(Categories())),
	}

	for _, cat := range Categories() {
		summary.CategoryBreakdown[cat] = 0
	}

	var rateSum float64
	for _, e := range events {
		switch e.Status {
		case EventStatusActive:
			summary.ActiveEvents++
		case EventStatusUpcoming:
			summary.UpcomingEvents++
		case EventStatusCompleted:
			summary.CompletedEvents++
		}

		summary.TotalRevenue += e.Revenue
		summary.TotalAttendees += e.TicketsSold
		if e.Capacity > 0 {
			rateSum += float64(e.TicketsSold) / float64(e.Capacity)
		}
		summary.CategoryBreakdown[e.Category]++
	}

	if len(events) > 0 {
		summary.AverageAttendanceRate = rateSum / float64(len(events)) * 100
	}

	return summary
}
