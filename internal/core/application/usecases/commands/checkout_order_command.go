package commands

import (
	"errors"
	"slices"

	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCheckoutOrderCommandIsNotConstructed = errors.New(
	"CheckoutOrderCommand must be created via NewCheckoutOrderCommand constructor",
)

// CheckoutOrderCommand settles an order. Split payments are optional; when
// present they must add up to the computed total.
//
// Example:
//
//	cmd, err := NewCheckoutOrderCommand(orderID, "card", []billing.SplitPayment{
//	    {Person: "Asha", Amount: kernel.MustMoney("131.25"), Mode: "card"},
//	    {Person: "Ravi", Amount: kernel.MustMoney("131.25"), Mode: "upi"},
//	})
type CheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	paymentMode string
	splits      []billing.SplitPayment

	guard guard.ConstructorGuard
}

func NewCheckoutOrderCommand(orderID kernel.UUID, paymentMode string, splits []billing.SplitPayment) (CheckoutOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CheckoutOrderCommand{}, err
	}
	return CheckoutOrderCommand{
		orderID:     orderID,
		paymentMode: paymentMode,
		splits:      slices.Clone(splits),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutOrderCommandIsNotConstructed)
}

func (c CheckoutOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CheckoutOrderCommand) PaymentMode() string {
	return c.paymentMode
}

func (c CheckoutOrderCommand) Splits() []billing.SplitPayment {
	return slices.Clone(c.splits)
}
