package queries

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/invoice"
	"restaurant/internal/core/ports"
)

type GetInvoicesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetInvoicesQueryHandler(uowFactory ports.UnitOfWorkFactory) GetInvoicesQueryHandler {
	return GetInvoicesQueryHandler{uowFactory: uowFactory}
}

func (h GetInvoicesQueryHandler) Handle(ctx context.Context, query GetInvoicesQuery) ([]views.Invoice, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	invoices, err := h.uowFactory.Create().InvoiceRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return views.NewInvoices(invoices), nil
}

type GetInvoiceQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetInvoiceQueryHandler(uowFactory ports.UnitOfWorkFactory) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{uowFactory: uowFactory}
}

func (h GetInvoiceQueryHandler) Handle(ctx context.Context, query GetInvoiceQuery) (views.Invoice, error) {
	if err := query.Validate(); err != nil {
		return views.Invoice{}, err
	}

	repo := h.uowFactory.Create().InvoiceRepository()
	var (
		inv *invoice.Invoice
		err error
	)
	if query.invoiceID != nil {
		inv, err = repo.Get(ctx, *query.invoiceID)
	} else {
		inv, err = repo.GetByNumber(ctx, query.number)
	}
	if err != nil {
		return views.Invoice{}, err
	}
	return views.NewInvoice(inv), nil
}
