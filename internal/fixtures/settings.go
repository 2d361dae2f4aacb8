package fixtures

import "github.com/nadji40/dolab/internal/domain"

// DefaultSettings returns the out-of-the-box user preferences
func DefaultSettings() domain.UserSettings {
	return domain.UserSettings{
		Theme:         domain.ThemeDark,
		Language:      domain.LangArabic,
		Notifications: true,
		AutoSync:      true,
	}
}
