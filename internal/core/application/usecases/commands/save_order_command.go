package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrSaveOrderCommandIsNotConstructed = errors.New(
	"SaveOrderCommand must be created via NewSaveOrderCommand constructor",
)

// SaveOrderCommand keeps an order open without a kitchen dispatch.
type SaveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSaveOrderCommand(orderID kernel.UUID) (SaveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SaveOrderCommand{}, err
	}
	return SaveOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c SaveOrderCommand) Validate() error {
	return c.guard.Validate(ErrSaveOrderCommandIsNotConstructed)
}

func (c SaveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
