package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// CompleteOrderCommandHandler completes delivery and pickup orders whose
// items are all ready or served, and frees a table if one was attached.
type CompleteOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
	timers     *services.KitchenTimers
}

func NewCompleteOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

// WithKitchenTimers drops the kitchen timer of every order the handler settles.
func (h CompleteOrderCommandHandler) WithKitchenTimers(timers *services.KitchenTimers) CompleteOrderCommandHandler {
	h.timers = timers
	return h
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
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
	if err = o.Complete(h.now()); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	events.add(ports.EventOrderCompleted, views.NewOrder(o))

	released, err := releaseTable(ctx, uow.TableRepository(), o)
	if err != nil {
		return nil, err
	}
	if released != nil {
		events.addTable(released)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events.flush(ctx, h.publisher)
	if h.timers != nil {
		h.timers.Forget(o.ID())
	}
	return o, nil
}
