package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// RemoveOrderItemCommandHandler detaches a line from its order and
// recomputes the total. The line is deleted with it.
type RemoveOrderItemCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewRemoveOrderItemCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

// Handle returns the order the line was removed from.
func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) (*order.Order, error) {
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
	o, err := orderRepo.GetByItemID(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}
	if err = o.RemoveItem(cmd.ItemID()); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	orderID := o.ID()
	events.add(ports.EventOrderItemDeleted, views.Deleted{ID: cmd.ItemID(), OrderID: &orderID})

	changed, err := projectOntoTable(ctx, uow.TableRepository(), o)
	if err != nil {
		return nil, err
	}
	if changed != nil {
		events.addTable(changed)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events.flush(ctx, h.publisher)
	return o, nil
}
