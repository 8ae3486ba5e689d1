package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses decimal strings", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("12.5")
		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("twelve")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price := kernel.MustMoney("0.10")

	t.Run("decimal sums do not drift", func(t *testing.T) {
		total := kernel.ZeroMoney()
		for range 10 {
			total = total.Add(price)
		}
		assert.True(t, total.Equal(kernel.MustMoney("1.00")))
	})

	t.Run("times and rate", func(t *testing.T) {
		sub := kernel.MustMoney("200").Times(2).Add(kernel.MustMoney("150"))
		tax := sub.MulRate(decimal.RequireFromString("0.05")).Round()

		assert.Equal(t, "550.00", sub.String())
		assert.Equal(t, "27.50", tax.String())
		assert.Equal(t, "577.50", sub.Add(tax).String())
	})

	t.Run("sub and sign", func(t *testing.T) {
		diff := kernel.MustMoney("5").Sub(kernel.MustMoney("7.25"))
		assert.True(t, diff.IsNegative())
		assert.False(t, diff.IsPositive())
		assert.Equal(t, "-2.25", diff.String())
	})
}

func TestMoney_WithinTolerance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"equal", "100.00", "100.00", true},
		{"one cent", "100.00", "99.99", true},
		{"just over a cent", "100.00", "99.989", false},
		{"twenty off", "100.00", "80.00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kernel.MustMoney(tt.a).WithinTolerance(kernel.MustMoney(tt.b)))
		})
	}
}

func TestNewMoneyFromFloat(t *testing.T) {
	assert.Equal(t, "157.50", kernel.NewMoneyFromFloat(157.5).String())
	assert.InDelta(t, 157.5, kernel.NewMoneyFromFloat(157.5).Float64(), 0.0001)
}

func TestMoney_TextRoundTrip(t *testing.T) {
	var m kernel.Money
	require.NoError(t, m.UnmarshalText([]byte("99.9")))
	text, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "99.90", string(text))

	require.ErrorIs(t, m.UnmarshalText([]byte("abc")), errs.ErrValueIsInvalid)
}
