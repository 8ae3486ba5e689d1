package commands_test

import (
	"errors"
	"testing"
	"time"

	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/digitalmenu"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockSyncMetrics struct{ mock.Mock }

func (m *MockSyncMetrics) OrderImported()              { m.Called() }
func (m *MockSyncMetrics) OrderFailed()                { m.Called() }
func (m *MockSyncMetrics) StatusPropagated()           { m.Called() }
func (m *MockSyncMetrics) PollFailed()                 { m.Called() }
func (m *MockSyncMetrics) ObservePoll(d time.Duration) { m.Called(d) }

type syncFixture struct {
	*restaurant
	feed    *memory.DigitalMenuFeed
	state   *commands.SyncState
	logs    *observer.ObservedLogs
	handler commands.SyncDigitalMenuOrdersCommandHandler
}

func newSyncFixture(t *testing.T, metrics commands.SyncMetrics) *syncFixture {
	t.Helper()
	r := newRestaurant(t)
	feed := memory.NewDigitalMenuFeed()
	state := commands.NewSyncState()
	core, logs := observer.New(zapcore.InfoLevel)

	h, err := commands.NewSyncDigitalMenuOrdersCommandHandler(
		r.factory, feed, state, r.publisher, metrics, zap.New(core), clock,
	)
	require.NoError(t, err)
	return &syncFixture{restaurant: r, feed: feed, state: state, logs: logs, handler: h}
}

func (f *syncFixture) sync(t *testing.T) commands.SyncReport {
	t.Helper()
	report, err := f.handler.Handle(t.Context(), commands.NewSyncDigitalMenuOrdersCommand())
	require.NoError(t, err)
	return report
}

func (f *syncFixture) importedOrder(t *testing.T, ref string) *order.Order {
	t.Helper()
	o, err := f.factory.Create().OrderRepository().GetByExternalRef(t.Context(), ref)
	require.NoError(t, err)
	return o
}

func digitalMenuOrder(id, tableNumber, floor string) digitalmenu.Order {
	return digitalmenu.Order{
		ID:            id,
		CustomerName:  "Ravi",
		CustomerPhone: "99000",
		Items: []digitalmenu.Item{
			{MenuItemName: "Masala Dosa", Quantity: 2, Price: 75, Total: 150, SpiceLevel: "medium"},
			{MenuItemName: "Filter Coffee", Quantity: 1, Price: 40, Total: 40, Notes: "less sugar"},
		},
		Subtotal:    190,
		Tax:         9.5,
		Total:       199.5,
		Status:      digitalmenu.Pending,
		TableNumber: tableNumber,
		FloorNumber: floor,
		CreatedAt:   now.Add(-time.Minute),
	}
}

func TestSyncDigitalMenuOrders_ImportsPendingOrder(t *testing.T) {
	f := newSyncFixture(t, nil)
	dosa := f.addMenuItem(t, "masala dosa", "75", true)
	f.feed.Insert(digitalMenuOrder("665f1c2e9b1d4a0012ab34cd", "T1", "ground floor"))

	report := f.sync(t)

	assert.Equal(t, commands.SyncReport{Imported: 1}, report)
	o := f.importedOrder(t, "665f1c2e9b1d4a0012ab34cd")
	assert.Equal(t, order.SentToKitchen, o.Status())
	assert.Equal(t, order.SourceDigitalMenu, o.Source())
	assert.Equal(t, "199.50", o.Total().String())
	require.NotNil(t, o.TableID())
	assert.True(t, o.TableID().IsEqual(f.t1.ID()))

	items := o.Items()
	require.Len(t, items, 2)
	require.NotNil(t, items[0].MenuItemID())
	assert.True(t, items[0].MenuItemID().IsEqual(dosa.ID()))
	assert.Equal(t, "Spice: medium", items[0].Notes())
	assert.Nil(t, items[1].MenuItemID())
	assert.True(t, items[1].IsVeg())
	assert.Equal(t, "less sugar", items[1].Notes())

	seated := f.table(t, f.t1.ID())
	assert.Equal(t, table.Occupied, seated.Status())
	assert.True(t, seated.CurrentOrderID().IsEqual(o.ID()))

	doc, ok := f.feed.Get("665f1c2e9b1d4a0012ab34cd")
	require.True(t, ok)
	assert.True(t, doc.SyncedToPOS)
	assert.Equal(t, o.ID().String(), doc.POSOrderID)
	assert.Equal(t, now, *doc.SyncedAt)
	assert.True(t, f.state.IsProcessed(doc.ID))

	assert.Equal(t, []ports.EventType{
		ports.EventOrderCreated,
		ports.EventTableUpdated,
		ports.EventDigitalMenuOrderSynced,
	}, f.publisher.types())
}

func TestSyncDigitalMenuOrders_ImportsOnce(t *testing.T) {
	f := newSyncFixture(t, nil)
	f.feed.Insert(digitalMenuOrder("a1", "T1", "Ground Floor"))

	f.sync(t)
	report := f.sync(t)

	assert.Zero(t, report.Imported)
	orders, err := f.factory.Create().OrderRepository().Find(t.Context(), ports.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestSyncDigitalMenuOrders_RetriesMarkSyncedWithoutDuplicating(t *testing.T) {
	metrics := new(MockSyncMetrics)
	metrics.On("OrderFailed").Once()
	metrics.On("OrderImported").Once()
	metrics.On("ObservePoll", mock.Anything)
	f := newSyncFixture(t, metrics)
	f.feed.Insert(digitalMenuOrder("a1", "", ""))
	f.feed.SetMarkSyncedError(errors.New("mongo unavailable"))

	report := f.sync(t)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, f.state.IsProcessed("a1"))

	f.feed.SetMarkSyncedError(nil)
	report = f.sync(t)
	assert.Equal(t, 1, report.Imported)

	orders, err := f.factory.Create().OrderRepository().Find(t.Context(), ports.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	doc, _ := f.feed.Get("a1")
	assert.Equal(t, orders[0].ID().String(), doc.POSOrderID)
	metrics.AssertExpectations(t)
}

func TestSyncDigitalMenuOrders_UnknownTable(t *testing.T) {
	f := newSyncFixture(t, nil)
	f.feed.Insert(digitalMenuOrder("a1", "T5", "Ground Floor"))

	f.sync(t)

	o := f.importedOrder(t, "a1")
	assert.Nil(t, o.TableID())
	assert.Equal(t, 1, f.logs.FilterMessage("digital menu table not found").Len())
}

func TestSyncDigitalMenuOrders_AmbiguousTable(t *testing.T) {
	f := newSyncFixture(t, nil)
	terrace, err := table.NewFloor(kernel.NewUUID(), "Terrace", 2)
	require.NoError(t, err)
	terraceID := terrace.ID()
	other, err := table.NewTable(kernel.NewUUID(), &terraceID, "T1", 4)
	require.NoError(t, err)
	uow := f.factory.Create()
	require.NoError(t, uow.FloorRepository().Add(t.Context(), terrace))
	require.NoError(t, uow.TableRepository().Add(t.Context(), other))

	f.feed.Insert(digitalMenuOrder("a1", "T1", ""))
	f.sync(t)

	o := f.importedOrder(t, "a1")
	require.NotNil(t, o.TableID())
	assert.True(t, o.TableID().IsEqual(f.t1.ID()), "first floor in display order wins")
	assert.Equal(t, 1, f.logs.FilterMessage("digital menu table is ambiguous, using the first match").Len())
}

func TestSyncDigitalMenuOrders_TableServingAnotherOrder(t *testing.T) {
	f := newSyncFixture(t, nil)
	tableID := f.t1.ID()
	walkIn := f.createOrder(t, order.DineIn, &tableID)
	f.feed.Insert(digitalMenuOrder("a1", "T1", "Ground Floor"))

	report := f.sync(t)

	assert.Equal(t, 1, report.Imported)
	assert.True(t, f.table(t, tableID).CurrentOrderID().IsEqual(walkIn.ID()))
	assert.Equal(t, 1, f.logs.FilterMessage("digital menu table is serving another order").Len())
}

func TestSyncDigitalMenuOrders_SkipsNonImportable(t *testing.T) {
	f := newSyncFixture(t, nil)
	doc := digitalMenuOrder("a1", "T1", "")
	doc.Status = digitalmenu.Cancelled
	f.feed.Insert(doc)

	report := f.sync(t)

	assert.Zero(t, report.Imported)
	_, err := f.factory.Create().OrderRepository().GetByExternalRef(t.Context(), "a1")
	require.Error(t, err)
}

func TestSyncDigitalMenuOrders_BadDocumentDoesNotStopCycle(t *testing.T) {
	f := newSyncFixture(t, nil)
	broken := digitalMenuOrder("a1", "", "")
	broken.Items = nil
	broken.CreatedAt = now.Add(-2 * time.Minute)
	f.feed.Insert(broken)
	f.feed.Insert(digitalMenuOrder("a2", "", ""))

	report := f.sync(t)

	assert.Equal(t, commands.SyncReport{Imported: 1, Failed: 1}, report)
	assert.False(t, f.state.IsProcessed("a1"))
	assert.True(t, f.state.IsProcessed("a2"))
}

func TestSyncDigitalMenuOrders_PropagatesStatus(t *testing.T) {
	f := newSyncFixture(t, nil)
	f.feed.Insert(digitalMenuOrder("a1", "T1", "Ground Floor"))
	f.sync(t)

	require.NoError(t, f.feed.SetStatus("a1", digitalmenu.Preparing, now))
	report := f.sync(t)

	assert.Equal(t, 1, report.Propagated)
	o := f.importedOrder(t, "a1")
	assert.Equal(t, []order.ItemStatus{order.ItemPreparing, order.ItemPreparing}, o.ItemStatuses())
	assert.Equal(t, table.Preparing, f.table(t, f.t1.ID()).Status())

	report = f.sync(t)
	assert.Zero(t, report.Propagated, "unchanged status is not propagated again")

	require.NoError(t, f.feed.SetStatus("a1", digitalmenu.Completed, now))
	f.sync(t)
	assert.Equal(t, table.Served, f.table(t, f.t1.ID()).Status())
}

func TestSyncDigitalMenuOrders_CancelledOrderLeavesKitchen(t *testing.T) {
	f := newSyncFixture(t, nil)
	f.feed.Insert(digitalMenuOrder("a1", "", ""))
	f.sync(t)

	require.NoError(t, f.feed.SetStatus("a1", digitalmenu.Cancelled, now))
	f.sync(t)

	o := f.importedOrder(t, "a1")
	assert.True(t, o.AllItemsServed())
	assert.Equal(t, order.SentToKitchen, o.Status())
}

func TestSyncDigitalMenuOrders_FeedFailure(t *testing.T) {
	metrics := new(MockSyncMetrics)
	metrics.On("PollFailed").Once()
	metrics.On("ObservePoll", time.Duration(0)).Once()
	f := newSyncFixture(t, metrics)
	f.feed.SetFindError(errors.New("connection refused"))

	_, err := f.handler.Handle(t.Context(), commands.NewSyncDigitalMenuOrdersCommand())

	require.Error(t, err)
	at, lastErr := f.state.LastCycle()
	assert.Equal(t, now, at)
	assert.Contains(t, lastErr, "connection refused")
	metrics.AssertExpectations(t)
}

func TestSyncDigitalMenuOrders_NotConstructed(t *testing.T) {
	f := newSyncFixture(t, nil)

	_, err := f.handler.Handle(t.Context(), commands.SyncDigitalMenuOrdersCommand{})

	require.ErrorIs(t, err, commands.ErrSyncDigitalMenuOrdersCommandIsNotConstructed)
}

func TestRestoreDigitalMenuSyncState(t *testing.T) {
	f := newSyncFixture(t, nil)
	f.feed.Insert(digitalMenuOrder("a1", "", ""))
	f.sync(t)
	require.NoError(t, f.feed.SetStatus("a1", digitalmenu.Confirmed, now))

	restarted := commands.NewSyncState()
	h, err := commands.NewRestoreDigitalMenuSyncStateCommandHandler(f.feed, restarted)
	require.NoError(t, err)
	n, err := h.Handle(t.Context(), commands.NewRestoreDigitalMenuSyncStateCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, restarted.IsProcessed("a1"))
	status, ok := restarted.LastStatus("a1")
	require.True(t, ok)
	assert.Equal(t, digitalmenu.Confirmed, status)

	_, err = commands.NewRestoreDigitalMenuSyncStateCommandHandler(nil, restarted)
	require.Error(t, err)
}
