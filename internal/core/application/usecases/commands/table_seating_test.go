package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (r *restaurant) seat(t *testing.T, tableID kernel.UUID, orderID *kernel.UUID) (*table.Table, error) {
	t.Helper()
	cmd, err := commands.NewSeatOrderCommand(tableID, orderID)
	require.NoError(t, err)
	return commands.NewSeatOrderCommandHandler(r.factory, r.publisher, clock).Handle(t.Context(), cmd)
}

func TestSeatOrder(t *testing.T) {
	t.Run("an order taken without a table reaches the kitchen once seated", func(t *testing.T) {
		r := newRestaurant(t)
		o := r.createOrder(t, order.DineIn, nil)
		r.addItem(t, o.ID(), "Dal Makhani", 1, "260")

		kot, err := commands.NewSendOrderToKitchenCommand(o.ID())
		require.NoError(t, err)
		send := commands.NewSendOrderToKitchenCommandHandler(r.factory, r.publisher, clock)
		_, err = send.Handle(t.Context(), kot)
		require.ErrorIs(t, err, order.ErrTableIsRequired)

		orderID := o.ID()
		r.publisher.reset()
		seated, err := r.seat(t, r.t1.ID(), &orderID)
		require.NoError(t, err)
		assert.Equal(t, table.Occupied, seated.Status())
		assert.True(t, seated.CurrentOrderID().IsEqual(orderID))
		assert.Equal(t, []ports.EventType{ports.EventTableUpdated, ports.EventOrderUpdated}, r.publisher.types())

		sent, err := send.Handle(t.Context(), kot)
		require.NoError(t, err)
		assert.Equal(t, order.SentToKitchen, sent.Status())
		assert.True(t, sent.TableID().IsEqual(r.t1.ID()))
	})

	t.Run("moving an order frees its old table", func(t *testing.T) {
		r := newRestaurant(t)
		from := r.t1.ID()
		o := r.createOrder(t, order.DineIn, &from)
		itemID := r.addItem(t, o.ID(), "Paneer Tikka", 1, "320")
		r.sendToKitchen(t, o.ID())
		r.setItemStatus(t, itemID, order.ItemReady)

		orderID := o.ID()
		moved, err := r.seat(t, r.t2.ID(), &orderID)

		require.NoError(t, err)
		assert.Equal(t, table.Ready, moved.Status(), "the kitchen progress follows the order")
		assert.Equal(t, table.Free, r.table(t, from).Status())
		assert.Nil(t, r.table(t, from).CurrentOrderID())
		assert.True(t, r.order(t, orderID).TableID().IsEqual(r.t2.ID()))
	})

	t.Run("a table serving another order is a conflict", func(t *testing.T) {
		r := newRestaurant(t)
		busy := r.t1.ID()
		r.createOrder(t, order.DineIn, &busy)
		o := r.createOrder(t, order.DineIn, nil)

		orderID := o.ID()
		_, err := r.seat(t, busy, &orderID)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Nil(t, r.order(t, orderID).TableID())
	})

	t.Run("delivery orders have no table", func(t *testing.T) {
		r := newRestaurant(t)
		o := r.createOrder(t, order.Delivery, nil)

		orderID := o.ID()
		_, err := r.seat(t, r.t1.ID(), &orderID)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, table.Free, r.table(t, r.t1.ID()).Status())
	})

	t.Run("clearing detaches a saved order", func(t *testing.T) {
		r := newRestaurant(t)
		tableID := r.t1.ID()
		o := r.createOrder(t, order.DineIn, &tableID)

		cleared, err := r.seat(t, tableID, nil)

		require.NoError(t, err)
		assert.Equal(t, table.Free, cleared.Status())
		assert.Nil(t, r.order(t, o.ID()).TableID())
	})

	t.Run("clearing a table the kitchen is cooking for is a conflict", func(t *testing.T) {
		r := newRestaurant(t)
		tableID := r.t1.ID()
		o := r.createOrder(t, order.DineIn, &tableID)
		r.addItem(t, o.ID(), "Naan", 2, "40")
		r.sendToKitchen(t, o.ID())

		_, err := r.seat(t, tableID, nil)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, table.Occupied, r.table(t, tableID).Status())
	})

	t.Run("unknown order", func(t *testing.T) {
		r := newRestaurant(t)
		missing := kernel.NewUUID()

		_, err := r.seat(t, r.t1.ID(), &missing)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestUpdateTableStatus(t *testing.T) {
	update := func(t *testing.T, r *restaurant, tableID kernel.UUID, status table.Status) (*table.Table, error) {
		t.Helper()
		cmd, err := commands.NewUpdateTableStatusCommand(tableID, status)
		require.NoError(t, err)
		return commands.NewUpdateTableStatusCommandHandler(r.factory, r.publisher, clock).Handle(t.Context(), cmd)
	}

	t.Run("free and reserved toggle by hand", func(t *testing.T) {
		r := newRestaurant(t)

		held, err := update(t, r, r.t1.ID(), table.Reserved)
		require.NoError(t, err)
		assert.Equal(t, table.Reserved, held.Status())

		freed, err := update(t, r, r.t1.ID(), table.Free)
		require.NoError(t, err)
		assert.Equal(t, table.Free, freed.Status())
		assert.Equal(t, []ports.EventType{ports.EventTableUpdated, ports.EventTableUpdated}, r.publisher.types())
	})

	t.Run("kitchen statuses cannot be set", func(t *testing.T) {
		r := newRestaurant(t)

		_, err := update(t, r, r.t1.ID(), table.Preparing)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, r.publisher.types())
	})

	t.Run("a table with an order is a conflict", func(t *testing.T) {
		r := newRestaurant(t)
		tableID := r.t1.ID()
		r.createOrder(t, order.DineIn, &tableID)

		_, err := update(t, r, tableID, table.Free)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, table.Occupied, r.table(t, tableID).Status())
	})

	t.Run("an active reservation keeps the table reserved", func(t *testing.T) {
		r := newRestaurant(t)
		r.reserve(t, r.t1.ID())

		_, err := update(t, r, r.t1.ID(), table.Free)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, table.Reserved, r.table(t, r.t1.ID()).Status())
	})

	_, err := commands.NewUpdateTableStatusCommand(kernel.NewUUID(), table.Status("closed"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDeleteTable(t *testing.T) {
	deleteTable := func(t *testing.T, r *restaurant, tableID kernel.UUID) error {
		t.Helper()
		cmd, err := commands.NewDeleteTableCommand(tableID)
		require.NoError(t, err)
		return commands.NewDeleteTableCommandHandler(r.factory, r.publisher, clock).Handle(t.Context(), cmd)
	}

	t.Run("removes a free table with its past reservations", func(t *testing.T) {
		r := newRestaurant(t)
		res := r.reserve(t, r.t2.ID())
		cancelled := reservation.Cancelled
		cancel, err := commands.NewUpdateReservationCommand(res.ID(), commands.ReservationChanges{Status: &cancelled})
		require.NoError(t, err)
		_, err = commands.NewUpdateReservationCommandHandler(r.factory, nil, clock).Handle(t.Context(), cancel)
		require.NoError(t, err)
		r.publisher.reset()

		require.NoError(t, deleteTable(t, r, r.t2.ID()))

		_, err = r.factory.Create().TableRepository().Get(t.Context(), r.t2.ID())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, []ports.EventType{ports.EventTableDeleted}, r.publisher.types())
		past, err := r.factory.Create().ReservationRepository().GetByTable(t.Context(), r.t2.ID())
		require.NoError(t, err)
		assert.Empty(t, past)
		require.ErrorIs(t, deleteTable(t, r, r.t2.ID()), errs.ErrObjectNotFound)
	})

	t.Run("a seated table is kept", func(t *testing.T) {
		r := newRestaurant(t)
		tableID := r.t1.ID()
		r.createOrder(t, order.DineIn, &tableID)

		require.ErrorIs(t, deleteTable(t, r, tableID), errs.ErrConflict)
		assert.Equal(t, table.Occupied, r.table(t, tableID).Status())
	})

	t.Run("a reserved table is kept", func(t *testing.T) {
		r := newRestaurant(t)
		r.reserve(t, r.t1.ID())

		require.ErrorIs(t, deleteTable(t, r, r.t1.ID()), errs.ErrConflict)
		assert.Equal(t, table.Reserved, r.table(t, r.t1.ID()).Status())
	})
}
