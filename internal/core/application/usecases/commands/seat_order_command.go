package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrSeatOrderCommandIsNotConstructed = errors.New(
	"SeatOrderCommand must be created via NewSeatOrderCommand constructor",
)

type SeatOrderCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSeatOrderCommand links orderID to the table. A nil order clears the table.
func NewSeatOrderCommand(tableID kernel.UUID, orderID *kernel.UUID) (SeatOrderCommand, error) {
	var orderErr error
	if orderID != nil {
		orderErr = orderID.Validate()
	}
	if err := errors.Join(tableID.Validate(), orderErr); err != nil {
		return SeatOrderCommand{}, err
	}
	return SeatOrderCommand{
		tableID: tableID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SeatOrderCommand) Validate() error {
	return c.guard.Validate(ErrSeatOrderCommandIsNotConstructed)
}

func (c SeatOrderCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c SeatOrderCommand) OrderID() *kernel.UUID {
	return c.orderID
}
