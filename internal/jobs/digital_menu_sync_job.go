package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultSyncInterval = 5 * time.Second

var ErrInvalidSyncInterval = errors.New("sync interval must be at least one second")

// DigitalMenuSyncJob runs the digital-menu sync on a fixed interval.
type DigitalMenuSyncJob struct {
	syncHandler    commands.SyncDigitalMenuOrdersCommandHandler
	restoreHandler commands.RestoreDigitalMenuSyncStateCommandHandler
	state          *commands.SyncState
	interval       time.Duration
	logger         *zap.Logger

	mu     sync.Mutex
	cron   *cron.Cron
	runCtx context.Context //nolint:containedctx // lives from Start to Stop
	cancel context.CancelFunc
}

// NewDigitalMenuSyncJob creates the job. A zero interval falls back to DefaultSyncInterval.
func NewDigitalMenuSyncJob(
	syncHandler commands.SyncDigitalMenuOrdersCommandHandler,
	restoreHandler commands.RestoreDigitalMenuSyncStateCommandHandler,
	state *commands.SyncState,
	interval time.Duration,
	logger *zap.Logger,
) (*DigitalMenuSyncJob, error) {
	if state == nil {
		return nil, errors.New("sync state is required")
	}
	if interval == 0 {
		interval = DefaultSyncInterval
	}
	if interval < time.Second {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidSyncInterval, interval)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DigitalMenuSyncJob{
		syncHandler:    syncHandler,
		restoreHandler: restoreHandler,
		state:          state,
		interval:       interval,
		logger:         logger.With(zap.String("component", "digital_menu_sync_job")),
	}, nil
}

// Start rebuilds the sync cache from the feed, runs one cycle immediately
// and schedules the rest. Starting a running job is a no-op. The lock is not
// held while the feed is queried, so Stop never waits on a slow feed.
func (j *DigitalMenuSyncJob) Start(ctx context.Context) error {
	j.mu.Lock()
	if j.cron != nil {
		j.mu.Unlock()
		j.logger.Debug("Digital menu sync job already running")
		return nil
	}

	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(newCronLogger(j.logger)),
		cron.WithChain(
			cron.Recover(newCronLogger(j.logger)),
			cron.SkipIfStillRunning(newCronLogger(j.logger)),
		),
	)
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", j.interval), j.RunOnce); err != nil {
		j.mu.Unlock()
		return fmt.Errorf("schedule digital menu sync: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	j.cron, j.runCtx, j.cancel = c, runCtx, cancel
	j.state.SetRunning(true)
	j.mu.Unlock()

	j.restore(runCtx)
	if runCtx.Err() == nil {
		j.cycle(runCtx)
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cron != c {
		j.logger.Info("Digital menu sync job stopped before its first tick")
		return nil
	}
	c.Start()
	j.logger.Info("Digital menu sync job started", zap.Duration("interval", j.interval))
	return nil
}

func (j *DigitalMenuSyncJob) restore(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	restored, err := j.restoreHandler.Handle(ctx, commands.NewRestoreDigitalMenuSyncStateCommand())
	if err != nil {
		j.logger.Error("Failed to restore digital menu sync state", zap.Error(err))
		return
	}
	j.logger.Info("Digital menu sync state restored", zap.Int("synced_orders", restored))
}

// RunOnce executes a single poll cycle. A cycle may take at most one
// interval and is cancelled by Stop.
func (j *DigitalMenuSyncJob) RunOnce() {
	j.cycle(j.context())
}

func (j *DigitalMenuSyncJob) cycle(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.interval)
	defer cancel()

	report, err := j.syncHandler.Handle(ctx, commands.NewSyncDigitalMenuOrdersCommand())
	if err != nil {
		j.logger.Error("Digital menu sync cycle failed", zap.Error(err))
		return
	}
	if report.Imported > 0 || report.Failed > 0 || report.Propagated > 0 {
		j.logger.Info("Digital menu sync cycle finished",
			zap.Int("imported", report.Imported),
			zap.Int("failed", report.Failed),
			zap.Int("propagated", report.Propagated),
		)
	}
}

func (j *DigitalMenuSyncJob) context() context.Context {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.runCtx == nil {
		return context.Background()
	}
	return j.runCtx
}

// Stop clears the schedule and cancels a cycle in flight.
func (j *DigitalMenuSyncJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cron == nil {
		return
	}
	j.cron.Stop()
	j.cancel()
	j.cron, j.runCtx, j.cancel = nil, nil, nil
	j.state.SetRunning(false)
	j.logger.Info("Digital menu sync job stopped")
}
