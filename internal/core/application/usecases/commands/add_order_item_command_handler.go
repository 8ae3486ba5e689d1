package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// AddOrderItemCommandHandler adds a line, recomputes the order total and
// re-projects the table status, since a fresh line pulls a ready table back
// to preparing.
type AddOrderItemCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewAddOrderItemCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

// Handle returns the updated order.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d := cmd.Details()
	item, err := order.NewItem(cmd.ItemID(), d.MenuItemID, d.Name, d.Quantity, d.Price, d.Notes, d.IsVeg)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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
	if err = o.AddItem(item); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	events.add(ports.EventOrderItemAdded, views.NewItem(o.ID(), item))

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
