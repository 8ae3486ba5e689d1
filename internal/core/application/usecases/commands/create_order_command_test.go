package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	tableID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, order.DineIn, &tableID, order.Customer{Name: "Asha"})
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.DineIn, cmd.OrderType())
	assert.True(t, cmd.TableID().IsEqual(tableID))
	assert.Equal(t, "Asha", cmd.Customer().Name)
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewCreateOrderCommand(invalidID, order.Pickup, nil, order.Customer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidType(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Type("drive-through"), nil, order.Customer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateOrderCommand_InvalidTableID(t *testing.T) {
	var tableID kernel.UUID
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.DineIn, &tableID, order.Customer{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	err := commands.CreateOrderCommand{}.Validate()
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
