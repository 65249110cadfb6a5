package jobs

import (
	"context"
	"fmt"
	"time"

	"marketplace-server/internal/observability"
	"marketplace-server/internal/store"
)

// VisitRetentionJob prunes raw visit rows older than the retention period.
// Visits referenced by a live attribution are kept regardless of age so
// fraud scoring can still load them.
type VisitRetentionJob struct {
	store         *store.Store
	logger        *observability.Logger
	interval      time.Duration
	retentionDays int
}

// NewVisitRetentionJob creates a new visit retention job
func NewVisitRetentionJob(store *store.Store, logger *observability.Logger, interval time.Duration, retentionDays int) *VisitRetentionJob {
	return &VisitRetentionJob{
		store:         store,
		logger:        logger,
		interval:      interval,
		retentionDays: retentionDays,
	}
}

// Name returns the job name
func (j *VisitRetentionJob) Name() string {
	return "visit-retention"
}

// Schedule returns how often the job runs
func (j *VisitRetentionJob) Schedule() time.Duration {
	return j.interval
}

// Run deletes visits older than the retention period
func (j *VisitRetentionJob) Run(ctx context.Context) error {
	cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)
	deleted, err := j.store.DeleteVisitsBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to delete old visits: %w", err)
	}
	if deleted > 0 {
		j.logger.Info(ctx, fmt.Sprintf("Deleted %d visits older than %d days", deleted, j.retentionDays))
	}
	return nil
}
