package domain

// Category classifies an event
type Category string

const (
	CategoryBusiness      Category = "business"
	CategoryCultural      Category = "cultural"
	CategoryEducational   Category = "educational"
	CategoryGovernment    Category = "government"
	CategoryEntertainment Category = "entertainment"
)

// Categories lists all valid event categories
func Categories() []Category {
	return []Category{
		CategoryBusiness,
		CategoryCultural,
		CategoryEducational,
		CategoryGovernment,
		CategoryEntertainment,
	}
}

// IsValid reports whether the category is a known value
func (c Category) IsValid() bool {
	switch c {
	case CategoryBusiness, CategoryCultural, CategoryEducational,
		CategoryGovernment, CategoryEntertainment:
		return true
	}
	return false
}

// EventStatus is the lifecycle state of an event
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusActive    EventStatus = "active"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// OrganizerType classifies who runs an event
type OrganizerType string

const (
	OrganizerTypeCompany    OrganizerType = "company"
	OrganizerTypeGovernment OrganizerType = "government"
	OrganizerTypeUniversity OrganizerType = "university"
	OrganizerTypeIndividual OrganizerType = "individual"
)

// Location holds the bilingual venue location of an event
type Location struct {
	City    Localized `json:"city"`
	Address Localized `json:"address"`
}

// SocialLinks holds an organizer's social media profiles
type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// OrganizerStats holds aggregate figures shown on an organizer profile
type OrganizerStats struct {
	TotalEvents    int     `json:"total_events"`
	TotalAttendees int     `json:"total_attendees"`
	AverageRating  float64 `json:"average_rating"`
	YearsActive    int     `json:"years_active"`
}

// OrganizerPost is a news post published on an organizer profile
type OrganizerPost struct {
	ID            string    `json:"id"`
	Title         Localized `json:"title"`
	Content       Localized `json:"content"`
	Image         string    `json:"image,omitempty"`
	PublishedDate string    `json:"published_date"`
	Tags          []string  `json:"tags,omitempty"`
}

// Organizer is the profile of the party running an event. It is
// embedded into each event rather than normalized, matching the
// upstream data contract.
type Organizer struct {
	ID              string          `json:"id,omitempty"`
	Name            Localized       `json:"name"`
	Type            OrganizerType   `json:"type"`
	Bio             *Localized      `json:"bio,omitempty"`
	Logo            string          `json:"logo,omitempty"`
	Website         string          `json:"website,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	SocialLinks     *SocialLinks    `json:"social_links,omitempty"`
	Address         *Localized      `json:"address,omitempty"`
	EstablishedYear int             `json:"established_year,omitempty"`
	TeamSize        int             `json:"team_size,omitempty"`
	Specialties     *LocalizedList  `json:"specialties,omitempty"`
	Stats           *OrganizerStats `json:"stats,omitempty"`
	Posts           []OrganizerPost `json:"posts,omitempty"`
}

// TicketType is one purchasable ticket tier of an event
type TicketType struct {
	ID        string        `json:"id"`
	Name      Localized     `json:"name"`
	Price     float64       `json:"price"`
	Available int           `json:"available"`
	Sold      int           `json:"sold"`
	Features  LocalizedList `json:"features"`
}

// Event is a single event record with its ticket tiers and embedded
// organizer profile.
type Event struct {
	ID          string       `json:"id"`
	Name        Localized    `json:"name"`
	Description Localized    `json:"description"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Venue       Localized    `json:"venue"`
	Location    Location     `json:"location"`
	Category    Category     `json:"category"`
	Capacity    int          `json:"capacity"`
	TicketsSold int          `json:"tickets_sold"`
	Revenue     float64      `json:"revenue"`
	Status      EventStatus  `json:"status"`
	Image       string       `json:"image,omitempty"`
	Organizer   Organizer    `json:"organizer"`
	Tickets     []TicketType `json:"tickets"`
}

// TicketType returns the ticket tier with the given id, or nil
func (e *Event) TicketType(id string) *TicketType {
	for i := range e.Tickets {
		if e.Tickets[i].ID == id {
			return &e.Tickets[i]
		}
	}
	return nil
}
