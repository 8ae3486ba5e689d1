package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrBillOrderCommandIsNotConstructed = errors.New(
	"BillOrderCommand must be created via NewBillOrderCommand constructor",
)

// BillOrderCommand marks an order billed.
type BillOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewBillOrderCommand(orderID kernel.UUID) (BillOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return BillOrderCommand{}, err
	}
	return BillOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c BillOrderCommand) Validate() error {
	return c.guard.Validate(ErrBillOrderCommandIsNotConstructed)
}

func (c BillOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
