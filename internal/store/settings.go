package store

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/nadji40/dolab/internal/domain"
	"github.com/nadji40/dolab/internal/fixtures"
	"github.com/nadji40/dolab/internal/repository"
)

// Settings returns the stored user preferences, or the defaults when
// none have been saved yet.
func (s *Store) Settings(ctx context.Context) (*domain.UserSettings, error) {
	var settings domain.UserSettings
	if s.loadJSON(repository.KeyUserSettings, &settings) {
		return &settings, nil
	}
	defaults := fixtures.DefaultSettings()
	return &defaults, nil
}

// UpdateSettings replaces the stored preferences. Unlike the
// best-effort cache writes, a failed write surfaces to the caller so
// the client knows the preference did not stick.
func (s *Store) UpdateSettings(ctx context.Context, settings *domain.UserSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.kv.Set(repository.KeyUserSettings, string(raw))
}

// Sync simulates a backend synchronization pass and records the
// completion timestamp.
func (s *Store) Sync(ctx context.Context) (time.Time, error) {
	if err := s.pause(ctx, s.cfg.SyncDelay); err != nil {
		return time.Time{}, err
	}

	syncedAt := s.now().UTC()
	if err := s.kv.Set(repository.KeyLastSync, syncedAt.Format(time.RFC3339)); err != nil {
		return time.Time{}, err
	}
	s.log.Info("sync completed", zap.Time("synced_at", syncedAt))
	return syncedAt, nil
}

// LastSync returns the timestamp of the last completed sync, or the
// zero time when no sync has run.
func (s *Store) LastSync(ctx context.Context) (time.Time, error) {
	raw, err := s.kv.Get(repository.KeyLastSync)
	if err != nil {
		if err == repository.ErrKeyNotFound {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}

	syncedAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		s.log.Warn("last sync timestamp corrupt", zap.String("value", raw), zap.Error(err))
		return time.Time{}, nil
	}
	return syncedAt, nil
}

// ResetCache removes every stored key, returning the store to its
// fixture-backed state.
func (s *Store) ResetCache(ctx context.Context) error {
	for _, key := range repository.CacheKeys() {
		if err := s.kv.Remove(key); err != nil {
			return err
		}
	}
	s.log.Info("cache reset")
	return nil
}
