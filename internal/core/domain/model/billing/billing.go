// Package billing computes bill totals and validates split payments.
//
// All functions are pure. Amounts are exact decimals; the 2-place rounding
// happens once on the tax line so that subtotal + tax == total holds for the
// persisted strings.
package billing

import (
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat tax applied to every bill.
var TaxRate = decimal.RequireFromString("0.05")

// Line is one billed item as frozen into an invoice.
type Line struct {
	Name     string       `json:"name"`
	Quantity int          `json:"quantity"`
	Price    kernel.Money `json:"price"`
	IsVeg    bool         `json:"isVeg"`
	Notes    string       `json:"notes,omitempty"`
}

// Amount returns price × quantity.
func (l Line) Amount() kernel.Money {
	return l.Price.Times(l.Quantity)
}

// Validate rejects lines without a name, with a quantity below 1 or a negative price.
func (l Line) Validate() error {
	var errList []error
	if strings.TrimSpace(l.Name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if l.Quantity < 1 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", l.Quantity)))
	}
	if l.Price.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", l.Price)))
	}
	return errors.Join(errList...)
}

// Totals is the computed bill.
type Totals struct {
	Subtotal kernel.Money
	Tax      kernel.Money
	Discount kernel.Money
	Total    kernel.Money
}

// Calculate returns subtotal = Σ price × quantity, tax = 5% of subtotal and
// total = subtotal + tax. Discounts are not modelled and are always zero.
func Calculate(lines []Line) Totals {
	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		subtotal = subtotal.Add(line.Amount())
	}
	tax := subtotal.MulRate(TaxRate).Round()
	return Totals{
		Subtotal: subtotal.Round(),
		Tax:      tax,
		Discount: kernel.ZeroMoney(),
		Total:    subtotal.Add(tax).Round(),
	}
}

// SplitPayment is one payer's share of a bill.
type SplitPayment struct {
	Person string       `json:"person"`
	Amount kernel.Money `json:"amount"`
	Mode   string       `json:"mode"`
}

// ErrSplitSumMismatch is wrapped by ValidateSplits when the shares do not add up.
var ErrSplitSumMismatch = errors.New("split payments do not add up to the total")

// ValidateSplits checks a split-bill partition against total.
//
// Rules:
//   - every share names a person and a payment mode
//   - every amount is strictly positive
//   - |Σ amounts − total| <= 0.01
//
// An empty slice is valid (no split). The returned error names the computed
// sum and the expected total.
func ValidateSplits(splits []SplitPayment, total kernel.Money) error {
	if len(splits) == 0 {
		return nil
	}

	sum := kernel.ZeroMoney()
	var errList []error
	for i, split := range splits {
		if strings.TrimSpace(split.Person) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("splitPayments[%d].person", i)))
		}
		if strings.TrimSpace(split.Mode) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("splitPayments[%d].mode", i)))
		}
		if !split.Amount.IsPositive() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("splitPayments[%d].amount", i),
				fmt.Errorf("%s is not greater than 0", split.Amount),
			))
		}
		sum = sum.Add(split.Amount)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if !sum.WithinTolerance(total) {
		return errs.NewValueIsInvalidErrorWithCause(
			"splitPayments",
			fmt.Errorf("%w: sum %s, expected %s", ErrSplitSumMismatch, sum, total),
		)
	}
	return nil
}
