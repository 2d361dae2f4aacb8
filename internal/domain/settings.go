package domain

// Theme is the UI theme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// UserSettings holds the per-user client preferences. Updates replace
// the whole object; there is no field-level merge.
type UserSettings struct {
	Theme         Theme `json:"theme"`
	Language      Lang  `json:"language"`
	Notifications bool  `json:"notifications"`
	AutoSync      bool  `json:"auto_sync"`
}
