package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/digitalmenu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type syncFixture struct {
	store *memory.Store
	feed  *memory.DigitalMenuFeed
	state *commands.SyncState
	logs  *observer.ObservedLogs
	job   *jobs.DigitalMenuSyncJob
}

func newSyncFixture(t *testing.T, interval time.Duration) *syncFixture {
	t.Helper()
	store := memory.NewStore()
	uowFactory := memory.NewUnitOfWorkFactory(store)
	feed := memory.NewDigitalMenuFeed()
	state := commands.NewSyncState()
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	syncHandler, err := commands.NewSyncDigitalMenuOrdersCommandHandler(uowFactory, feed, state, nil, nil, logger, nil)
	require.NoError(t, err)
	restoreHandler, err := commands.NewRestoreDigitalMenuSyncStateCommandHandler(feed, state)
	require.NoError(t, err)
	job, err := jobs.NewDigitalMenuSyncJob(syncHandler, restoreHandler, state, interval, logger)
	require.NoError(t, err)

	return &syncFixture{store: store, feed: feed, state: state, logs: logs, job: job}
}

func (f *syncFixture) orders(t *testing.T) []*order.Order {
	t.Helper()
	uow := memory.NewUnitOfWorkFactory(f.store).Create()
	orders, err := uow.OrderRepository().Find(t.Context(), ports.OrderFilter{})
	require.NoError(t, err)
	return orders
}

func pendingOrder(id string) digitalmenu.Order {
	return digitalmenu.Order{
		ID:           id,
		CustomerName: "Asha",
		Items: []digitalmenu.Item{
			{MenuItemName: "Masala Dosa", Quantity: 2, Price: 120, Total: 240, SpiceLevel: "medium"},
		},
		Subtotal:  240,
		Tax:       12,
		Total:     252,
		Status:    digitalmenu.Pending,
		CreatedAt: time.Now().Add(-time.Minute),
	}
}

func TestNewDigitalMenuSyncJob_Validation(t *testing.T) {
	_, err := jobs.NewDigitalMenuSyncJob(
		commands.SyncDigitalMenuOrdersCommandHandler{},
		commands.RestoreDigitalMenuSyncStateCommandHandler{},
		nil, time.Second, nil,
	)
	require.Error(t, err)

	_, err = jobs.NewDigitalMenuSyncJob(
		commands.SyncDigitalMenuOrdersCommandHandler{},
		commands.RestoreDigitalMenuSyncStateCommandHandler{},
		commands.NewSyncState(), 100*time.Millisecond, nil,
	)
	require.ErrorIs(t, err, jobs.ErrInvalidSyncInterval)
}

func TestDigitalMenuSyncJob_StartRunsInitialCycle(t *testing.T) {
	f := newSyncFixture(t, time.Hour)
	f.feed.Insert(pendingOrder("dm-1"))

	require.NoError(t, f.job.Start(t.Context()))
	t.Cleanup(f.job.Stop)

	assert.True(t, f.state.Running())
	assert.Equal(t, 1, f.state.ProcessedCount())

	orders := f.orders(t)
	require.Len(t, orders, 1)
	assert.Equal(t, "dm-1", orders[0].ExternalRef())
	assert.Equal(t, order.SourceDigitalMenu, orders[0].Source())

	doc, ok := f.feed.Get("dm-1")
	require.True(t, ok)
	assert.True(t, doc.SyncedToPOS)
	assert.Equal(t, orders[0].ID().String(), doc.POSOrderID)
}

func TestDigitalMenuSyncJob_StartIsIdempotent(t *testing.T) {
	f := newSyncFixture(t, time.Hour)

	require.NoError(t, f.job.Start(t.Context()))
	require.NoError(t, f.job.Start(t.Context()))
	f.job.Stop()
	f.job.Stop()

	assert.False(t, f.state.Running())
	assert.Equal(t, 1, f.logs.FilterMessage("Digital menu sync job started").Len())
	assert.Equal(t, 1, f.logs.FilterMessage("Digital menu sync job stopped").Len())
}

func TestDigitalMenuSyncJob_RestoresBeforeImport(t *testing.T) {
	f := newSyncFixture(t, time.Hour)
	synced := pendingOrder("dm-old")
	synced.SyncedToPOS = true
	synced.POSOrderID = "elsewhere"
	f.feed.Insert(synced)

	require.NoError(t, f.job.Start(t.Context()))
	t.Cleanup(f.job.Stop)

	assert.Equal(t, 1, f.state.ProcessedCount())
	assert.Empty(t, f.orders(t))
}

func TestDigitalMenuSyncJob_FailedCycleIsLogged(t *testing.T) {
	f := newSyncFixture(t, time.Hour)
	f.feed.SetFindError(errors.New("connection reset"))

	require.NoError(t, f.job.Start(t.Context()))
	t.Cleanup(f.job.Stop)

	assert.Equal(t, 1, f.logs.FilterMessage("Failed to restore digital menu sync state").Len())
	assert.Equal(t, 1, f.logs.FilterMessage("Digital menu sync cycle failed").Len())
	_, lastErr := f.state.LastCycle()
	assert.Contains(t, lastErr, "connection reset")
}

func TestDigitalMenuSyncJob_PollsOnInterval(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the scheduler")
	}
	f := newSyncFixture(t, time.Second)

	require.NoError(t, f.job.Start(t.Context()))
	t.Cleanup(f.job.Stop)
	f.feed.Insert(pendingOrder("dm-late"))

	assert.Eventually(t, func() bool {
		return f.state.ProcessedCount() == 1
	}, 5*time.Second, 100*time.Millisecond)
}

// stallingFeed answers no query until the caller gives up.
type stallingFeed struct {
	*memory.DigitalMenuFeed
}

func (f stallingFeed) FindUnsynced(ctx context.Context) ([]digitalmenu.Order, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (f stallingFeed) FindSynced(ctx context.Context) ([]digitalmenu.Order, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func newStalledJob(t *testing.T, interval time.Duration) (*jobs.DigitalMenuSyncJob, *commands.SyncState, *observer.ObservedLogs) {
	t.Helper()
	feed := stallingFeed{DigitalMenuFeed: memory.NewDigitalMenuFeed()}
	state := commands.NewSyncState()
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	uowFactory := memory.NewUnitOfWorkFactory(memory.NewStore())
	syncHandler, err := commands.NewSyncDigitalMenuOrdersCommandHandler(uowFactory, feed, state, nil, nil, logger, nil)
	require.NoError(t, err)
	restoreHandler, err := commands.NewRestoreDigitalMenuSyncStateCommandHandler(feed, state)
	require.NoError(t, err)
	job, err := jobs.NewDigitalMenuSyncJob(syncHandler, restoreHandler, state, interval, logger)
	require.NoError(t, err)
	return job, state, logs
}

func TestDigitalMenuSyncJob_StopDoesNotWaitForStalledFeed(t *testing.T) {
	job, state, logs := newStalledJob(t, time.Hour)

	started := make(chan error, 1)
	go func() { started <- job.Start(t.Context()) }()
	require.Eventually(t, state.Running, time.Second, 10*time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		job.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop waited for the feed")
	}
	select {
	case err := <-started:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Start kept querying after Stop")
	}

	assert.False(t, state.Running())
	assert.Equal(t, 1, logs.FilterMessage("Digital menu sync job stopped before its first tick").Len())
	assert.Zero(t, logs.FilterMessage("Digital menu sync job started").Len())
}

func TestDigitalMenuSyncJob_CyclesAreBoundedByInterval(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for two timeouts")
	}
	job, state, logs := newStalledJob(t, time.Second)

	begin := time.Now()
	require.NoError(t, job.Start(t.Context()))
	t.Cleanup(job.Stop)

	assert.Less(t, time.Since(begin), 5*time.Second)
	assert.True(t, state.Running())
	assert.Equal(t, 1, logs.FilterMessage("Failed to restore digital menu sync state").Len())
	assert.Equal(t, 1, logs.FilterMessage("Digital menu sync cycle failed").Len())
}

func TestJobManager(t *testing.T) {
	require.NoError(t, jobs.NewJobManager(nil).StartAll(t.Context()))
	jobs.NewJobManager(nil).StopAll()

	f := newSyncFixture(t, time.Hour)
	jm := jobs.NewJobManager(f.job)
	require.NoError(t, jm.StartAll(t.Context()))
	assert.True(t, f.state.Running())
	jm.StopAll()
	assert.False(t, f.state.Running())
}
