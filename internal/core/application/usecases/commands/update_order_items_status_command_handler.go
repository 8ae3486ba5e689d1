package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// UpdateOrderItemsStatusCommandHandler promotes all lines of an order and
// re-projects its table. The digital-menu sync uses it to mirror foreign
// status changes, so the table follows the same path as a kitchen update.
type UpdateOrderItemsStatusCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewUpdateOrderItemsStatusCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) UpdateOrderItemsStatusCommandHandler {
	return UpdateOrderItemsStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

// Handle returns the order and how many lines changed. Nothing is written
// when no line moved.
func (h UpdateOrderItemsStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderItemsStatusCommand,
) (*order.Order, int, error) {
	if err := cmd.Validate(); err != nil {
		return nil, 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, 0, err
	}
	moved, err := o.PromoteItems(cmd.Status())
	if err != nil {
		return nil, 0, err
	}
	if moved == 0 {
		return o, 0, nil
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, 0, err
	}

	events := newOutbox(h.now)
	events.add(ports.EventOrderUpdated, views.NewOrder(o))
	changed, err := projectOntoTable(ctx, uow.TableRepository(), o)
	if err != nil {
		return nil, 0, err
	}
	if changed != nil {
		events.addTable(changed)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, 0, err
	}

	events.flush(ctx, h.publisher)
	return o, moved, nil
}
