package services_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableResolver_Resolve(t *testing.T) {
	ground, err := table.NewFloor(kernel.NewUUID(), "Ground Floor", 1)
	require.NoError(t, err)
	terrace, err := table.NewFloor(kernel.NewUUID(), "Terrace", 2)
	require.NoError(t, err)

	mk := func(f *table.Floor, number string) *table.Table {
		id := f.ID()
		tbl, err := table.NewTable(kernel.NewUUID(), &id, number, 4)
		require.NoError(t, err)
		return tbl
	}
	g1, g2, t2 := mk(ground, "1"), mk(ground, "2"), mk(terrace, "2")
	tables := []*table.Table{g1, g2, t2}
	floors := []*table.Floor{ground, terrace}
	resolver := services.NewTableResolver()

	t.Run("floor then number, case-insensitive", func(t *testing.T) {
		res := resolver.Resolve(tables, floors, "2", "terrace")

		assert.Same(t, t2, res.Table)
		assert.True(t, res.FloorMatched)
		assert.False(t, res.Ambiguous)
	})

	t.Run("unknown floor falls back to any floor", func(t *testing.T) {
		res := resolver.Resolve(tables, floors, "1", "Rooftop")

		assert.Same(t, g1, res.Table)
		assert.False(t, res.FloorMatched)
		assert.False(t, res.Ambiguous)
	})

	t.Run("ambiguous fallback takes the first match", func(t *testing.T) {
		res := resolver.Resolve(tables, floors, "2", "")

		assert.Same(t, g2, res.Table)
		assert.True(t, res.Ambiguous)
		assert.Equal(t, 2, res.Candidates)
	})

	t.Run("no match", func(t *testing.T) {
		res := resolver.Resolve(tables, floors, "T5", "Ground Floor")

		assert.Nil(t, res.Table)
		assert.True(t, res.FloorMatched)
	})

	t.Run("no table number", func(t *testing.T) {
		assert.Nil(t, resolver.Resolve(tables, floors, " ", "Terrace").Table)
	})
}
