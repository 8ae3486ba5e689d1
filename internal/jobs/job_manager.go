package jobs

import (
	"context"
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	digitalMenuSyncJob *DigitalMenuSyncJob
}

// NewJobManager creates a job manager. A nil sync job (no digital-menu feed
// configured) is allowed and simply never runs.
func NewJobManager(digitalMenuSyncJob *DigitalMenuSyncJob) *JobManager {
	return &JobManager{
		digitalMenuSyncJob: digitalMenuSyncJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll(ctx context.Context) error {
	if jm.digitalMenuSyncJob == nil {
		return nil
	}
	if err := jm.digitalMenuSyncJob.Start(ctx); err != nil {
		return fmt.Errorf("failed to start digital menu sync job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.digitalMenuSyncJob != nil {
		jm.digitalMenuSyncJob.Stop()
	}
}
