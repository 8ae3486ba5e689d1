package queries

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetInvoicesQueryIsNotConstructed = errors.New(
		"GetInvoicesQuery must be created via NewGetInvoicesQuery constructor",
	)
	ErrGetInvoiceQueryIsNotConstructed = errors.New(
		"GetInvoiceQuery must be created via NewGetInvoiceQuery or NewGetInvoiceByNumberQuery constructor",
	)
)

// GetInvoicesQuery lists every invoice, newest first.
type GetInvoicesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetInvoicesQuery() GetInvoicesQuery {
	return GetInvoicesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoicesQueryIsNotConstructed)
}

// GetInvoiceQuery reads one invoice by id or by its INV- number.
type GetInvoiceQuery struct {
	invoiceID *kernel.UUID
	number    string

	guard guard.ConstructorGuard
}

func NewGetInvoiceQuery(invoiceID kernel.UUID) (GetInvoiceQuery, error) {
	if err := invoiceID.Validate(); err != nil {
		return GetInvoiceQuery{}, err
	}
	return GetInvoiceQuery{invoiceID: &invoiceID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetInvoiceByNumberQuery(number string) (GetInvoiceQuery, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return GetInvoiceQuery{}, errs.NewValueIsRequiredError("invoiceNumber")
	}
	return GetInvoiceQuery{number: number, guard: guard.NewConstructorGuard()}, nil
}

func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}
