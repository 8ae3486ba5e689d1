package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/ports"
)

// DeleteReservationCommandHandler removes a reservation and frees its
// table when nothing else holds it.
type DeleteReservationCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewDeleteReservationCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) DeleteReservationCommandHandler {
	return DeleteReservationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h DeleteReservationCommandHandler) Handle(ctx context.Context, cmd DeleteReservationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.ReservationRepository().Get(ctx, cmd.ReservationID())
	if err != nil {
		return err
	}
	if err = uow.ReservationRepository().Delete(ctx, r.ID()); err != nil {
		return err
	}

	events := newOutbox(h.now)
	freed, err := unreserveIfUnclaimed(ctx, uow, r.TableID())
	if err != nil {
		return err
	}
	if freed != nil {
		events.addTable(freed)
	}
	events.add(ports.EventReservationDeleted, views.Deleted{ID: r.ID()})

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	events.flush(ctx, h.publisher)
	return nil
}
