package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// SeatOrderCommandHandler moves a dine-in order onto a table, or clears the
// table when no order is given. The table the order sat at before is
// released in the same unit of work.
type SeatOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewSeatOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) SeatOrderCommandHandler {
	return SeatOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h SeatOrderCommandHandler) Handle(ctx context.Context, cmd SeatOrderCommand) (*table.Table, error) {
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

	t, err := uow.TableRepository().Get(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	if cmd.OrderID() == nil {
		err = h.clear(ctx, uow, t, events)
	} else {
		err = h.seat(ctx, uow, t, *cmd.OrderID(), events)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events.flush(ctx, h.publisher)
	return t, nil
}

func (h SeatOrderCommandHandler) seat(
	ctx context.Context,
	uow ports.UnitOfWork,
	t *table.Table,
	orderID kernel.UUID,
	events *outbox,
) error {
	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}

	if previous := o.TableID(); previous != nil && !previous.IsEqual(t.ID()) {
		old, releaseErr := releaseTable(ctx, uow.TableRepository(), o)
		if releaseErr != nil {
			return releaseErr
		}
		if old != nil {
			events.addTable(old)
		}
	}

	if err = o.SeatAt(t.ID()); err != nil {
		return err
	}
	if err = t.Occupy(o.ID()); err != nil {
		return err
	}
	if _, err = services.NewTableStatusProjector().Apply(o, t); err != nil {
		return err
	}

	if err = uow.TableRepository().Update(ctx, t); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	events.addTable(t)
	events.add(ports.EventOrderUpdated, views.NewOrder(o))
	return nil
}

// clear frees the table. A saved order sitting there loses its table; one
// already in the kitchen keeps the table and makes this a conflict.
func (h SeatOrderCommandHandler) clear(ctx context.Context, uow ports.UnitOfWork, t *table.Table, events *outbox) error {
	var held kernel.UUID
	if current := t.CurrentOrderID(); current != nil {
		held = *current
		o, err := uow.OrderRepository().Get(ctx, held)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
		case err != nil:
			return err
		default:
			if err = h.unseat(ctx, uow, o, events); err != nil {
				return err
			}
		}
	}

	if !t.Release(held) {
		return nil
	}
	if err := uow.TableRepository().Update(ctx, t); err != nil {
		return err
	}
	events.addTable(t)
	return nil
}

func (h SeatOrderCommandHandler) unseat(ctx context.Context, uow ports.UnitOfWork, o *order.Order, events *outbox) error {
	if o.Status().IsTerminal() {
		return nil
	}
	if err := o.Unseat(); err != nil {
		return err
	}
	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	events.add(ports.EventOrderUpdated, views.NewOrder(o))
	return nil
}
