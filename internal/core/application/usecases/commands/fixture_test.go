package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC)

func clock() time.Time { return now }

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e ports.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []ports.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

// restaurant is a memory-backed floor plan with one floor and two tables.
type restaurant struct {
	factory   ports.UnitOfWorkFactory
	publisher *recordingPublisher

	ground *table.Floor
	t1     *table.Table
	t2     *table.Table
}

func newRestaurant(t *testing.T) *restaurant {
	t.Helper()
	r := &restaurant{
		factory:   memory.NewUnitOfWorkFactory(memory.NewStore()),
		publisher: &recordingPublisher{},
	}

	ground, err := table.NewFloor(kernel.NewUUID(), "Ground Floor", 1)
	require.NoError(t, err)
	floorID := ground.ID()
	t1, err := table.NewTable(kernel.NewUUID(), &floorID, "T1", 4)
	require.NoError(t, err)
	t2, err := table.NewTable(kernel.NewUUID(), &floorID, "T2", 2)
	require.NoError(t, err)

	ctx := t.Context()
	uow := r.factory.Create()
	require.NoError(t, uow.FloorRepository().Add(ctx, ground))
	require.NoError(t, uow.TableRepository().Add(ctx, t1))
	require.NoError(t, uow.TableRepository().Add(ctx, t2))

	r.ground, r.t1, r.t2 = ground, t1, t2
	return r
}

func (r *restaurant) addMenuItem(t *testing.T, name string, price string, isVeg bool) *menu.MenuItem {
	t.Helper()
	m, err := menu.NewMenuItem(kernel.NewUUID(), name, "Mains", kernel.MustMoney(price), isVeg)
	require.NoError(t, err)
	require.NoError(t, r.factory.Create().MenuItemRepository().Add(t.Context(), m))
	return m
}

func (r *restaurant) table(t *testing.T, id kernel.UUID) *table.Table {
	t.Helper()
	found, err := r.factory.Create().TableRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return found
}

func (r *restaurant) order(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	found, err := r.factory.Create().OrderRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return found
}

func (r *restaurant) createOrder(t *testing.T, orderType order.Type, tableID *kernel.UUID) *order.Order {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orderType, tableID, order.Customer{Name: "Asha", Phone: "98450"})
	require.NoError(t, err)
	o, err := commands.NewCreateOrderCommandHandler(r.factory, r.publisher, clock).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return o
}

func (r *restaurant) addItem(t *testing.T, orderID kernel.UUID, name string, qty int, price string) kernel.UUID {
	t.Helper()
	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderItemCommand(orderID, itemID, commands.ItemDetails{
		Name:     name,
		Quantity: qty,
		Price:    kernel.MustMoney(price),
		IsVeg:    true,
	})
	require.NoError(t, err)
	_, err = commands.NewAddOrderItemCommandHandler(r.factory, r.publisher, clock).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return itemID
}

func (r *restaurant) sendToKitchen(t *testing.T, orderID kernel.UUID) {
	t.Helper()
	cmd, err := commands.NewSendOrderToKitchenCommand(orderID)
	require.NoError(t, err)
	_, err = commands.NewSendOrderToKitchenCommandHandler(r.factory, r.publisher, clock).Handle(t.Context(), cmd)
	require.NoError(t, err)
}

func (r *restaurant) setItemStatus(t *testing.T, itemID kernel.UUID, status order.ItemStatus) {
	t.Helper()
	cmd, err := commands.NewUpdateOrderItemStatusCommand(itemID, status)
	require.NoError(t, err)
	_, err = commands.NewUpdateOrderItemStatusCommandHandler(r.factory, r.publisher, clock).Handle(t.Context(), cmd)
	require.NoError(t, err)
}

func (r *restaurant) checkout(t *testing.T, orderID kernel.UUID, mode string) commands.CheckoutResult {
	t.Helper()
	cmd, err := commands.NewCheckoutOrderCommand(orderID, mode, nil)
	require.NoError(t, err)
	res, err := commands.NewCheckoutOrderCommandHandler(r.factory, r.publisher, clock).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return res
}
