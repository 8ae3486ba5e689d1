package commands

import (
	"errors"
	"slices"

	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRegenerateInvoiceCommandIsNotConstructed = errors.New(
	"RegenerateInvoiceCommand must be created via NewRegenerateInvoiceCommand constructor",
)

// RegenerateInvoiceCommand replaces the frozen lines of an invoice. A nil
// splits slice keeps the recorded split payments.
type RegenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	lines     []billing.Line
	splits    []billing.SplitPayment

	guard guard.ConstructorGuard
}

func NewRegenerateInvoiceCommand(
	invoiceID kernel.UUID,
	lines []billing.Line,
	splits []billing.SplitPayment,
) (RegenerateInvoiceCommand, error) {
	if err := invoiceID.Validate(); err != nil {
		return RegenerateInvoiceCommand{}, err
	}
	return RegenerateInvoiceCommand{
		invoiceID: invoiceID,
		lines:     slices.Clone(lines),
		splits:    slices.Clone(splits),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrRegenerateInvoiceCommandIsNotConstructed)
}

func (c RegenerateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

func (c RegenerateInvoiceCommand) Lines() []billing.Line {
	return slices.Clone(c.lines)
}

func (c RegenerateInvoiceCommand) Splits() []billing.SplitPayment {
	return slices.Clone(c.splits)
}
