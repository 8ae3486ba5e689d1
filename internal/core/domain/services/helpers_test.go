package services_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

func newKitchenOrder(t *testing.T, createdAt time.Time, itemCount int) *order.Order {
	t.Helper()
	tableID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), order.DineIn, &tableID, order.Customer{}, createdAt)
	require.NoError(t, err)
	for range itemCount {
		addItem(t, o)
	}
	require.NoError(t, o.SendToKitchen())
	return o
}

func addItem(t *testing.T, o *order.Order) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), nil, "Thali", 1, kernel.MustMoney("180"), "", true)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))
	return item
}

func setAll(t *testing.T, o *order.Order, s order.ItemStatus) {
	t.Helper()
	for _, item := range o.Items() {
		require.NoError(t, o.UpdateItemStatus(item.ID(), s))
	}
}
