package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// BillOrderCommandHandler marks an order billed. No kitchen precondition
// applies: quick-bill flows bill before dispatch.
type BillOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewBillOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) BillOrderCommandHandler {
	return BillOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h BillOrderCommandHandler) Handle(ctx context.Context, cmd BillOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = o.Bill(h.now()); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	events.add(ports.EventOrderUpdated, views.NewOrder(o))
	events.flush(ctx, h.publisher)
	return o, nil
}
