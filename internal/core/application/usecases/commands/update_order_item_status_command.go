package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateOrderItemStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderItemStatusCommand must be created via NewUpdateOrderItemStatusCommand constructor",
)

// UpdateOrderItemStatusCommand moves one kitchen line forward.
type UpdateOrderItemStatusCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	status order.ItemStatus

	guard guard.ConstructorGuard
}

func NewUpdateOrderItemStatusCommand(itemID kernel.UUID, status order.ItemStatus) (UpdateOrderItemStatusCommand, error) {
	if err := errors.Join(itemID.Validate(), status.Validate()); err != nil {
		return UpdateOrderItemStatusCommand{}, err
	}
	return UpdateOrderItemStatusCommand{
		itemID: itemID,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemStatusCommandIsNotConstructed)
}

func (c UpdateOrderItemStatusCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c UpdateOrderItemStatusCommand) Status() order.ItemStatus {
	return c.status
}
