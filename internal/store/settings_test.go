package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nadji40/dolab/internal/domain"
)

func TestSettings_Defaults(t *testing.T) {
	s, _, _ := newTestStore()

	settings, err := s.Settings(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if settings.Theme != domain.ThemeDark {
		t.Errorf("Expected dark theme, got %s", settings.Theme)
	}
	if settings.Language != domain.LangArabic {
		t.Errorf("Expected Arabic language, got %s", settings.Language)
	}
	if !settings.Notifications || !settings.AutoSync {
		t.Error("Expected notifications and auto sync enabled")
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	updated := &domain.UserSettings{
		Theme:         domain.ThemeLight,
		Language:      domain.LangEnglish,
		Notifications: false,
		AutoSync:      true,
	}
	if err := s.UpdateSettings(ctx, updated); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if *settings != *updated {
		t.Errorf("Expected %+v, got %+v", updated, settings)
	}
}

func TestUpdateSettings_WriteFailureSurfaces(t *testing.T) {
	s, kv, _ := newTestStore()
	boom := errors.New("backend down")
	kv.FailSets(boom)

	err := s.UpdateSettings(context.Background(), &domain.UserSettings{Theme: domain.ThemeLight, Language: domain.LangEnglish})
	if !errors.Is(err, boom) {
		t.Errorf("Expected write error to surface, got %v", err)
	}
}

func TestSettings_DegradesToDefaults(t *testing.T) {
	s, kv, _ := newTestStore()
	kv.FailGets(errors.New("backend down"))

	settings, err := s.Settings(context.Background())
	if err != nil {
		t.Fatalf("Expected default fallback, got error: %v", err)
	}
	if settings.Theme != domain.ThemeDark {
		t.Errorf("Expected default theme, got %s", settings.Theme)
	}
}

func TestSync(t *testing.T) {
	s, _, _ := newTestStore()
	ctx := context.Background()

	syncedAt, err := s.Sync(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := time.Date(2024, 12, 5, 10, 0, 0, 0, time.UTC)
	if !syncedAt.Equal(want) {
		t.Errorf("Expected %v, got %v", want, syncedAt)
	}

	last, err := s.LastSync(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !last.Equal(want) {
		t.Errorf("Expected last sync %v, got %v", want, last)
	}
}

func TestLastSync_NeverSynced(t *testing.T) {
	s, _, _ := newTestStore()

	last, err := s.LastSync(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !last.IsZero() {
		t.Errorf("Expected zero time, got %v", last)
	}
}
