package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// ItemDetails is the snapshot of a menu item copied into an order line.
type ItemDetails struct {
	MenuItemID *kernel.UUID
	Name       string
	Quantity   int
	Price      kernel.Money
	Notes      string
	IsVeg      bool
}

// AddOrderItemCommand appends one line to an order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	details ItemDetails

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand checks the identifiers; name, quantity and price are
// validated when the line is built.
func NewAddOrderItemCommand(orderID, itemID kernel.UUID, details ItemDetails) (AddOrderItemCommand, error) {
	var menuErr error
	if details.MenuItemID != nil {
		menuErr = details.MenuItemID.Validate()
	}
	if err := errors.Join(orderID.Validate(), itemID.Validate(), menuErr); err != nil {
		return AddOrderItemCommand{}, err
	}
	return AddOrderItemCommand{
		orderID: orderID,
		itemID:  itemID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AddOrderItemCommand) Details() ItemDetails {
	return c.details
}
