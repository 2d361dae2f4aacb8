package store

import (
	"context"

	"github.com/nadji40/dolab/internal/domain"
	"github.com/nadji40/dolab/internal/repository"
)

// Analytics returns the dashboard summary, cache first like every
// other collection read. On a miss the summary is derived from the
// current event catalog and cached; there is no hand-authored fixture
// because the catalog is the source of truth.
func (s *Store) Analytics(ctx context.Context) (*domain.AnalyticsSummary, error) {
	if err := s.pause(ctx, s.cfg.ReadDelay); err != nil {
		return nil, err
	}

	var summary domain.AnalyticsSummary
	if s.loadJSON(repository.KeyAnalyticsCache, &summary) {
		return &summary, nil
	}

	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}

	summary = domain.ComputeAnalytics(events)
	s.saveJSON(repository.KeyAnalyticsCache, summary)
	return &summary, nil
}
