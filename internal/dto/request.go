// Package dto holds the HTTP request and response shapes
package dto

import "github.com/nadji40/dolab/internal/domain"

// ScanRequest carries a scanned QR payload
type ScanRequest struct {
	QRCode string `json:"qr_code" binding:"required"`
}

// AttendeeInfoRequest is the purchaser contact block
type AttendeeInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PurchaseTicketRequest carries a ticket purchase
type PurchaseTicketRequest struct {
	EventID      string              `json:"event_id" binding:"required"`
	TicketTypeID string              `json:"ticket_type_id" binding:"required"`
	Quantity     int                 `json:"quantity"`
	Attendee     AttendeeInfoRequest `json:"attendee"`
}

// Validate checks field constraints beyond binding tags
func (r *PurchaseTicketRequest) Validate() (bool, string) {
	if r.Quantity < 0 {
		return false, "quantity must not be negative"
	}
	if r.Quantity > 10 {
		return false, "quantity must not exceed 10"
	}
	return true, ""
}

// ApplyJobRequest carries a job application submission
type ApplyJobRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"cover_letter"`
}

// UpdateSettingsRequest replaces the stored user preferences
type UpdateSettingsRequest struct {
	Theme         string `json:"theme" binding:"required"`
	Language      string `json:"language" binding:"required"`
	Notifications bool   `json:"notifications"`
	AutoSync      bool   `json:"auto_sync"`
}

// Validate checks field constraints beyond binding tags
func (r *UpdateSettingsRequest) Validate() (bool, string) {
	if r.Theme != string(domain.ThemeLight) && r.Theme != string(domain.ThemeDark) {
		return false, "theme must be light or dark"
	}
	if !domain.Lang(r.Language).IsValid() {
		return false, "language must be ar or en"
	}
	return true, ""
}

// ToSettings converts the request into the domain settings object
func (r *UpdateSettingsRequest) ToSettings() *domain.UserSettings {
	return &domain.UserSettings{
		Theme:         domain.Theme(r.Theme),
		Language:      domain.Lang(r.Language),
		Notifications: r.Notifications,
		AutoSync:      r.AutoSync,
	}
}
