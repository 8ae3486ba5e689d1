package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateOrderItemsStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderItemsStatusCommand must be created via NewUpdateOrderItemsStatusCommand constructor",
)

// UpdateOrderItemsStatusCommand pushes every line of an order up to a status.
// Lines already past it are left alone.
type UpdateOrderItemsStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.ItemStatus

	guard guard.ConstructorGuard
}

func NewUpdateOrderItemsStatusCommand(orderID kernel.UUID, status order.ItemStatus) (UpdateOrderItemsStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return UpdateOrderItemsStatusCommand{}, err
	}
	return UpdateOrderItemsStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderItemsStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsStatusCommandIsNotConstructed)
}

func (c UpdateOrderItemsStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderItemsStatusCommand) Status() order.ItemStatus {
	return c.status
}
