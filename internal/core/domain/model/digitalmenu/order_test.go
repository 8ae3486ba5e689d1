package digitalmenu_test

import (
	"testing"

	"restaurant/internal/core/domain/model/digitalmenu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_ItemStatus(t *testing.T) {
	tests := []struct {
		in   digitalmenu.Status
		want order.ItemStatus
	}{
		{digitalmenu.Pending, order.ItemNew},
		{digitalmenu.Confirmed, order.ItemNew},
		{digitalmenu.Preparing, order.ItemPreparing},
		{digitalmenu.Completed, order.ItemServed},
		{digitalmenu.Cancelled, order.ItemServed},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, err := tt.in.ItemStatus()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := digitalmenu.Status("delivered").ItemStatus()
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsImportable(t *testing.T) {
	assert.True(t, digitalmenu.Pending.IsImportable())
	assert.True(t, digitalmenu.Confirmed.IsImportable())
	assert.False(t, digitalmenu.Preparing.IsImportable())
	assert.False(t, digitalmenu.Cancelled.IsImportable())
}

func TestItem_KitchenNotes(t *testing.T) {
	assert.Equal(t, "no onions | Spice: hot", digitalmenu.Item{Notes: "no onions", SpiceLevel: "hot"}.KitchenNotes())
	assert.Equal(t, "Spice: mild", digitalmenu.Item{SpiceLevel: "mild"}.KitchenNotes())
	assert.Equal(t, "extra raita", digitalmenu.Item{Notes: " extra raita "}.KitchenNotes())
	assert.Empty(t, digitalmenu.Item{}.KitchenNotes())
}
