package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/invoice"
	"restaurant/internal/core/ports"
)

// RegenerateInvoiceCommandHandler is the only post-hoc edit of an invoice:
// totals are recomputed from the new lines, never from the live order.
type RegenerateInvoiceCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewRegenerateInvoiceCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) RegenerateInvoiceCommandHandler {
	return RegenerateInvoiceCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h RegenerateInvoiceCommandHandler) Handle(ctx context.Context, cmd RegenerateInvoiceCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InvoiceRepository()
	inv, err := repo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return nil, err
	}
	if err = inv.Regenerate(cmd.Lines(), cmd.Splits(), h.now()); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, inv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	events.add(ports.EventInvoiceUpdated, views.NewInvoice(inv))
	events.flush(ctx, h.publisher)
	return inv, nil
}
