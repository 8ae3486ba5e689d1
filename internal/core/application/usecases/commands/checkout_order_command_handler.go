package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/invoice"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// CheckoutResult is the paid order and its invoice.
type CheckoutResult struct {
	Order   *order.Order
	Invoice *invoice.Invoice
}

// CheckoutOrderCommandHandler settles an order in one unit of work:
//
//  1. bill the current items (subtotal, 5% tax, total)
//  2. reject split payments that do not add up, before anything changes
//  3. mark the order paid
//  4. free its table
//  5. freeze exactly one invoice numbered from the invoice count
//
// Two checkouts racing on the count mint the same number; the unique number
// makes the second commit fail instead of duplicating it.
type CheckoutOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
	timers     *services.KitchenTimers
}

func NewCheckoutOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) CheckoutOrderCommandHandler {
	return CheckoutOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

// WithKitchenTimers drops the kitchen timer of every order the handler settles.
func (h CheckoutOrderCommandHandler) WithKitchenTimers(timers *services.KitchenTimers) CheckoutOrderCommandHandler {
	h.timers = timers
	return h
}

func (h CheckoutOrderCommandHandler) Handle(ctx context.Context, cmd CheckoutOrderCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CheckoutResult{}, err
	}

	lines := billingLines(o)
	totals := billing.Calculate(lines)
	if err = billing.ValidateSplits(cmd.Splits(), totals.Total); err != nil {
		return CheckoutResult{}, err
	}

	now := h.now()
	if err = o.Checkout(cmd.PaymentMode(), now); err != nil {
		return CheckoutResult{}, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return CheckoutResult{}, err
	}

	events := newOutbox(h.now)
	events.add(ports.EventOrderPaid, views.NewOrder(o))

	party := invoice.Party{
		CustomerName:  o.Customer().Name,
		CustomerPhone: o.Customer().Phone,
	}
	t, err := seatedTable(ctx, uow.TableRepository(), o)
	if err != nil {
		return CheckoutResult{}, err
	}
	if t != nil {
		party.TableNumber = t.Number()
		if t.FloorID() != nil {
			if f, floorErr := uow.FloorRepository().Get(ctx, *t.FloorID()); floorErr == nil {
				party.FloorName = f.Name()
			}
		}
		if t.Release(o.ID()) {
			if err = uow.TableRepository().Update(ctx, t); err != nil {
				return CheckoutResult{}, err
			}
			events.addTable(t)
		}
	}

	invoiceRepo := uow.InvoiceRepository()
	count, err := invoiceRepo.Count(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}
	inv, err := invoice.NewInvoice(
		kernel.NewUUID(),
		invoice.NextNumber(count),
		o.ID(),
		party,
		lines,
		o.PaymentMode(),
		cmd.Splits(),
		now,
	)
	if err != nil {
		return CheckoutResult{}, err
	}
	if err = invoiceRepo.Add(ctx, inv); err != nil {
		return CheckoutResult{}, err
	}
	events.add(ports.EventInvoiceCreated, views.NewInvoice(inv))

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	events.flush(ctx, h.publisher)
	if h.timers != nil {
		h.timers.Forget(o.ID())
	}
	return CheckoutResult{Order: o, Invoice: inv}, nil
}

func billingLines(o *order.Order) []billing.Line {
	items := o.Items()
	lines := make([]billing.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, billing.Line{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			IsVeg:    item.IsVeg(),
			Notes:    item.Notes(),
		})
	}
	return lines
}
