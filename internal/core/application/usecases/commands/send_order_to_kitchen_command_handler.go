package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// SendOrderToKitchenCommandHandler dispatches the order and seats it: a free
// or reserved table becomes occupied and linked to the order. A table that
// already serves another order is a conflict.
type SendOrderToKitchenCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewSendOrderToKitchenCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) SendOrderToKitchenCommandHandler {
	return SendOrderToKitchenCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h SendOrderToKitchenCommandHandler) Handle(ctx context.Context, cmd SendOrderToKitchenCommand) (*order.Order, error) {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = o.SendToKitchen(); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)

	tableRepo := uow.TableRepository()
	t, err := seatedTable(ctx, tableRepo, o)
	if err != nil {
		return nil, err
	}
	if t != nil {
		wasFree := t.CurrentOrderID() == nil
		if err = t.Occupy(o.ID()); err != nil {
			return nil, err
		}
		if wasFree {
			if err = tableRepo.Update(ctx, t); err != nil {
				return nil, err
			}
			events.addTable(t)
		}
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}
	events.add(ports.EventOrderUpdated, views.NewOrder(o))

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events.flush(ctx, h.publisher)
	return o, nil
}
