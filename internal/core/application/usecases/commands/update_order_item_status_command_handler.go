package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// UpdateOrderItemStatusCommandHandler changes the status of one line and
// recomputes the table status from all lines of the order.
type UpdateOrderItemStatusCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewUpdateOrderItemStatusCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) UpdateOrderItemStatusCommandHandler {
	return UpdateOrderItemStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

// Handle returns the owning order after the change.
func (h UpdateOrderItemStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderItemStatusCommand,
) (*order.Order, error) {
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
	if err = o.UpdateItemStatus(cmd.ItemID(), cmd.Status()); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	changed, err := projectOntoTable(ctx, uow.TableRepository(), o)
	if err != nil {
		return nil, err
	}
	if changed != nil {
		events.addTable(changed)
	}
	if item, ok := o.Item(cmd.ItemID()); ok {
		events.add(ports.EventOrderItemUpdated, views.NewItem(o.ID(), item))
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events.flush(ctx, h.publisher)
	return o, nil
}
