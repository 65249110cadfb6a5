package jobs

import (
	"context"
	"fmt"
	"time"

	"marketplace-server/internal/observability"
	"marketplace-server/internal/store"
)

// AttributionCleanupJob removes attribution rows whose window has lapsed.
// Lookups already filter on expires_at, so this is storage hygiene, not
// correctness.
type AttributionCleanupJob struct {
	store    *store.Store
	logger   *observability.Logger
	interval time.Duration
}

// NewAttributionCleanupJob creates a new attribution cleanup job
func NewAttributionCleanupJob(store *store.Store, logger *observability.Logger, interval time.Duration) *AttributionCleanupJob {
	return &AttributionCleanupJob{
		store:    store,
		logger:   logger,
		interval: interval,
	}
}

// Name returns the job name
func (j *AttributionCleanupJob) Name() string {
	return "attribution-cleanup"
}

// Schedule returns how often the job runs
func (j *AttributionCleanupJob) Schedule() time.Duration {
	return j.interval
}

// Run deletes expired attributions
func (j *AttributionCleanupJob) Run(ctx context.Context) error {
	deleted, err := j.store.DeleteExpiredAttributions(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete expired attributions: %w", err)
	}
	if deleted > 0 {
		j.logger.Info(ctx, fmt.Sprintf("Deleted %d expired attributions", deleted))
	}
	return nil
}
