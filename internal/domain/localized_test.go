package domain

import "testing"

func TestLocalized_In(t *testing.T) {
	v := Localized{AR: "الرياض", EN: "Riyadh"}

	if got := v.In(LangEnglish); got != "Riyadh" {
		t.Errorf("Expected 'Riyadh', got '%s'", got)
	}
	if got := v.In(LangArabic); got != "الرياض" {
		t.Errorf("Expected Arabic value, got '%s'", got)
	}
	// Unknown tags fall back to Arabic
	if got := v.In(Lang("fr")); got != "الرياض" {
		t.Errorf("Expected Arabic fallback, got '%s'", got)
	}
}

func TestLocalizedList_In(t *testing.T) {
	v := LocalizedList{AR: []string{"أ", "ب"}, EN: []string{"a", "b"}}

	if got := v.In(LangEnglish); len(got) != 2 || got[0] != "a" {
		t.Errorf("Unexpected english list: %v", got)
	}
	if got := v.In(LangArabic); len(got) != 2 || got[0] != "أ" {
		t.Errorf("Unexpected arabic list: %v", got)
	}
}

func TestLang_IsValid(t *testing.T) {
	if !LangArabic.IsValid() || !LangEnglish.IsValid() {
		t.Error("Expected ar and en to be valid")
	}
	if Lang("fr").IsValid() {
		t.Error("Expected fr to be invalid")
	}
}

func TestCategory_IsValid(t *testing.T) {
	for _, cat := range Categories() {
		if !cat.IsValid() {
			t.Errorf("Expected category %q to be valid", cat)
		}
	}
	if Category("sports").IsValid() {
		t.Error("Expected unknown category to be invalid")
	}
}
