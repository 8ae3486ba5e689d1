package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrSendOrderToKitchenCommandIsNotConstructed = errors.New(
	"SendOrderToKitchenCommand must be created via NewSendOrderToKitchenCommand constructor",
)

// SendOrderToKitchenCommand dispatches an order to the kitchen (KOT).
type SendOrderToKitchenCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSendOrderToKitchenCommand(orderID kernel.UUID) (SendOrderToKitchenCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SendOrderToKitchenCommand{}, err
	}
	return SendOrderToKitchenCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c SendOrderToKitchenCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderToKitchenCommandIsNotConstructed)
}

func (c SendOrderToKitchenCommand) OrderID() kernel.UUID {
	return c.orderID
}
