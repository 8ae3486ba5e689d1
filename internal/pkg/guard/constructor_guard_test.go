package guard_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("ticket not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type seatCount struct {
		value int
		guard guard.ConstructorGuard
	}
	errSeatCountNotConstructed := errors.New("seatCount must be created via newSeatCount")

	newSeatCount := func(v int) (seatCount, error) {
		if v <= 0 {
			return seatCount{}, errors.New("seats must be positive")
		}
		return seatCount{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed", func(t *testing.T) {
		sc, err := newSeatCount(4)
		require.NoError(t, err)
		require.NoError(t, sc.guard.Validate(errSeatCountNotConstructed))
		assert.Equal(t, 4, sc.value)
	})

	t.Run("zero_value", func(t *testing.T) {
		var sc seatCount
		assert.Equal(t, errSeatCountNotConstructed, sc.guard.Validate(errSeatCountNotConstructed))
	})

	t.Run("copy_keeps_guard", func(t *testing.T) {
		sc, err := newSeatCount(2)
		require.NoError(t, err)
		cp := sc
		require.NoError(t, cp.guard.Validate(nil))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}
	for range 50 {
		<-done
	}
}
