package services_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableStatusProjector_Derive(t *testing.T) {
	const (
		n = order.ItemNew
		p = order.ItemPreparing
		r = order.ItemReady
		s = order.ItemServed
	)

	tests := []struct {
		name     string
		statuses []order.ItemStatus
		want     table.Status
		changed  bool
	}{
		{"no items", nil, "", false},
		{"all new", []order.ItemStatus{n, n}, "", false},
		{"one preparing", []order.ItemStatus{n, p}, table.Preparing, true},
		{"one ready among new", []order.ItemStatus{n, r}, table.Preparing, true},
		{"all ready", []order.ItemStatus{r, r, r}, table.Ready, true},
		{"ready and served", []order.ItemStatus{r, s}, table.Ready, true},
		{"all served", []order.ItemStatus{s, s, s}, table.Served, true},
		{"served with new line", []order.ItemStatus{s, s, n}, "", false},
		{"served with preparing line", []order.ItemStatus{s, p}, table.Preparing, true},
	}

	projector := services.NewTableStatusProjector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := projector.Derive(tt.statuses)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)

			again, changedAgain := projector.Derive(tt.statuses)
			assert.Equal(t, got, again)
			assert.Equal(t, changed, changedAgain)
		})
	}
}

func TestTableStatusProjector_Apply(t *testing.T) {
	projector := services.NewTableStatusProjector()

	t.Run("three items ready then served", func(t *testing.T) {
		o := newKitchenOrder(t, t0, 3)
		tbl, err := table.NewTable(*o.TableID(), nil, "5", 4)
		require.NoError(t, err)
		require.NoError(t, tbl.Occupy(o.ID()))

		setAll(t, o, order.ItemReady)
		changed, err := projector.Apply(o, tbl)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, table.Ready, tbl.Status())

		setAll(t, o, order.ItemServed)
		_, err = projector.Apply(o, tbl)
		require.NoError(t, err)
		assert.Equal(t, table.Served, tbl.Status())
	})

	t.Run("ignores tables serving another order", func(t *testing.T) {
		o := newKitchenOrder(t, t0, 1)
		tbl, err := table.NewTable(kernel.NewUUID(), nil, "6", 2)
		require.NoError(t, err)
		require.NoError(t, tbl.Occupy(kernel.NewUUID()))
		setAll(t, o, order.ItemServed)

		changed, err := projector.Apply(o, tbl)

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, table.Occupied, tbl.Status())
	})
}
