package domain

// Lang identifies one of the two content languages carried by every
// bilingual field.
type Lang string

const (
	LangArabic  Lang = "ar"
	LangEnglish Lang = "en"
)

// IsValid reports whether the language tag is one the content supports
func (l Lang) IsValid() bool {
	return l == LangArabic || l == LangEnglish
}

// Localized is a bilingual string value
type Localized struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

// In returns the value for the given language, defaulting to Arabic
// for unknown tags (the product's primary language).
func (v Localized) In(lang Lang) string {
	if lang == LangEnglish {
		return v.EN
	}
	return v.AR
}

// LocalizedList is a bilingual list of strings
type LocalizedList struct {
	AR []string `json:"ar"`
	EN []string `json:"en"`
}

// In returns the list for the given language, defaulting to Arabic
func (v LocalizedList) In(lang Lang) []string {
	if lang == LangEnglish {
		return v.EN
	}
	return v.AR
}
