package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new POS order.
// A dine-in order may be seated at a table right away; delivery and pickup
// orders carry customer details instead.
//
// Example:
//
//	tableID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), order.DineIn, &tableID, order.Customer{})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orderType order.Type
	tableID   *kernel.UUID
	customer  order.Customer

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identifiers and the order type. A table
// on a delivery or pickup order is rejected by the aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderType order.Type,
	tableID *kernel.UUID,
	customer order.Customer,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	var tableErr error
	if tableID != nil {
		tableErr = tableID.Validate()
	}

	if err := errors.Join(
		orderID.Validate(),
		orderType.Validate(),
		tableErr,
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.orderType = orderType
	cmd.tableID = tableID
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}

func (c CreateOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}
