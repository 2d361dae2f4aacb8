package domain

import "fmt"

// TeamMember is a member of the organizer workspace team
type TeamMember struct {
	ID          string    `json:"id"`
	Name        Localized `json:"name"`
	Email       string    `json:"email"`
	Role        Localized `json:"role"`
	Permissions []string  `json:"permissions"`
	Avatar      string    `json:"avatar,omitempty"`
	IsActive    bool      `json:"is_active"`
}

// JobType is the employment type of a job posting
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// JobStatus is the publication state of a job posting
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// SalaryRange is the advertised salary band of a job posting
type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// JobOrganizer is the slim organizer reference attached to a posting
type JobOrganizer struct {
	ID      string        `json:"id"`
	Name    Localized     `json:"name"`
	Type    OrganizerType `json:"type"`
	Logo    string        `json:"logo,omitempty"`
	Website string        `json:"website,omitempty"`
}

// JobApplication is the receipt returned for a submitted application.
// Applications are delivered to the hiring pipeline, not stored.
type JobApplication struct {
	ID            string `json:"id"`
	JobID         string `json:"job_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	CoverLetter   string `json:"cover_letter,omitempty"`
	SubmittedDate string `json:"submitted_date"`
}

// NewApplicationID builds an application id from a millisecond
// timestamp.
func NewApplicationID(millis int64) string {
	return fmt.Sprintf("app-%d", millis)
}

// JobPosting is a published job opening
type JobPosting struct {
	ID           string        `json:"id"`
	Title        Localized     `json:"title"`
	Department   Localized     `json:"department"`
	Location     Localized     `json:"location"`
	Type         JobType       `json:"type"`
	Description  Localized     `json:"description"`
	Requirements LocalizedList `json:"requirements"`
	Benefits     LocalizedList `json:"benefits"`
	Salary       *SalaryRange  `json:"salary,omitempty"`
	PostedDate   string        `json:"posted_date"`
	Deadline     string        `json:"deadline"`
	Status       JobStatus     `json:"status"`
	Organizer    *JobOrganizer `json:"organizer,omitempty"`
}
