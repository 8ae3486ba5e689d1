package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// CreateOrderCommandHandler opens an order and, for dine-in orders with a
// table, seats it there: the table becomes occupied and linked to the order.
// A table already serving another order is a conflict.
type CreateOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewCreateOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

// Handle creates the order in status saved and returns it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.OrderType(), cmd.TableID(), cmd.Customer(), h.now())
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

	events := newOutbox(h.now)

	var seated *table.Table
	if created.TableID() != nil {
		seated, err = uow.TableRepository().Get(ctx, *created.TableID())
		if err != nil {
			return nil, err
		}
		if err = seated.Occupy(created.ID()); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, err
	}
	events.add(ports.EventOrderCreated, views.NewOrder(created))

	if seated != nil {
		if err = uow.TableRepository().Update(ctx, seated); err != nil {
			return nil, err
		}
		events.addTable(seated)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events.flush(ctx, h.publisher)
	return created, nil
}
