// Package invoice holds the frozen bill produced by checkout.
package invoice

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// StatusPaid is the only status an invoice is created with.
const StatusPaid = "paid"

var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// FormatNumber renders the sequential invoice number, e.g. INV-0001.
func FormatNumber(seq int) string {
	return fmt.Sprintf("INV-%04d", seq)
}

// NextNumber derives the number of the next invoice from the count of existing
// ones. Two concurrent checkouts can observe the same count and mint the same
// number; storage keeps the number unique so the second insert fails.
func NextNumber(existing int64) string {
	return FormatNumber(int(existing) + 1)
}

// Party is the table and customer information copied into the invoice so it
// survives later edits of the table or the customer.
type Party struct {
	TableNumber   string
	FloorName     string
	CustomerName  string
	CustomerPhone string
}

// Invoice is an immutable snapshot of a checked-out order. Only Regenerate
// may change its lines and totals afterwards.
type Invoice struct {
	id          kernel.UUID
	number      string
	orderID     kernel.UUID
	party       Party
	lines       []billing.Line
	totals      billing.Totals
	paymentMode string
	splits      []billing.SplitPayment
	status      string
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewInvoice computes the totals of lines and freezes them together with the
// payment details. Split payments must add up to the computed total.
func NewInvoice(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	party Party,
	lines []billing.Line,
	paymentMode string,
	splits []billing.SplitPayment,
	now time.Time,
) (*Invoice, error) {
	var lineErrs []error
	for _, line := range lines {
		lineErrs = append(lineErrs, line.Validate())
	}

	var numberErr error
	if !strings.HasPrefix(number, "INV-") {
		numberErr = errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%q does not start with INV-", number))
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		numberErr,
		errors.Join(lineErrs...),
	); err != nil {
		return nil, err
	}

	totals := billing.Calculate(lines)
	if err := billing.ValidateSplits(splits, totals.Total); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		number:        number,
		orderID:       orderID,
		party:         party,
		lines:         slices.Clone(lines),
		totals:        totals,
		paymentMode:   paymentMode,
		splits:        slices.Clone(splits),
		status:        StatusPaid,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// Snapshot carries the persisted state of an invoice for RestoreInvoice.
type Snapshot struct {
	ID          kernel.UUID
	Number      string
	OrderID     kernel.UUID
	Party       Party
	Lines       []billing.Line
	Totals      billing.Totals
	PaymentMode string
	Splits      []billing.SplitPayment
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func RestoreInvoice(s Snapshot) *Invoice {
	return &Invoice{
		id:            s.ID,
		number:        s.Number,
		orderID:       s.OrderID,
		party:         s.Party,
		lines:         s.Lines,
		totals:        s.Totals,
		paymentMode:   s.PaymentMode,
		splits:        s.Splits,
		status:        s.Status,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}
}

func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

func (i *Invoice) ID() kernel.UUID {
	return i.id
}

func (i *Invoice) Number() string {
	return i.number
}

func (i *Invoice) OrderID() kernel.UUID {
	return i.orderID
}

func (i *Invoice) Party() Party {
	return i.party
}

func (i *Invoice) Lines() []billing.Line {
	return slices.Clone(i.lines)
}

func (i *Invoice) Totals() billing.Totals {
	return i.totals
}

func (i *Invoice) PaymentMode() string {
	return i.paymentMode
}

func (i *Invoice) Splits() []billing.SplitPayment {
	return slices.Clone(i.splits)
}

func (i *Invoice) Status() string {
	return i.status
}

func (i *Invoice) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Invoice) UpdatedAt() time.Time {
	return i.updatedAt
}

// Regenerate replaces the frozen lines and recomputes the totals. When splits
// is nil the recorded split payments are kept; either way they must add up to
// the new total.
func (i *Invoice) Regenerate(lines []billing.Line, splits []billing.SplitPayment, now time.Time) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	var lineErrs []error
	for _, line := range lines {
		lineErrs = append(lineErrs, line.Validate())
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	if splits == nil {
		splits = i.splits
	}
	totals := billing.Calculate(lines)
	if err := billing.ValidateSplits(splits, totals.Total); err != nil {
		return err
	}

	i.lines = slices.Clone(lines)
	i.splits = slices.Clone(splits)
	i.totals = totals
	i.updatedAt = now
	return nil
}

func (i *Invoice) Clone() *Invoice {
	c := *i
	c.lines = slices.Clone(i.lines)
	c.splits = slices.Clone(i.splits)
	return &c
}
