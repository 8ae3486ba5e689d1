package commands

import (
	"context"
	"fmt"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// DeleteTableCommandHandler removes a table nobody holds. A current order or
// an active reservation is a conflict; past reservations go with the table.
type DeleteTableCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewDeleteTableCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) DeleteTableCommandHandler {
	return DeleteTableCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h DeleteTableCommandHandler) Handle(ctx context.Context, cmd DeleteTableCommand) error {
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

	t, err := uow.TableRepository().Get(ctx, cmd.TableID())
	if err != nil {
		return err
	}
	if t.CurrentOrderID() != nil {
		return errs.NewConflictError("table", fmt.Sprintf("%s is serving order %s", t.Number(), t.CurrentOrderID()))
	}

	reservations, err := uow.ReservationRepository().GetByTable(ctx, t.ID())
	if err != nil {
		return err
	}
	for _, r := range reservations {
		if r.IsActive() {
			return reservationConflict(t)
		}
	}
	for _, r := range reservations {
		if err = uow.ReservationRepository().Delete(ctx, r.ID()); err != nil {
			return err
		}
	}
	if err = uow.TableRepository().Delete(ctx, t.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	events := newOutbox(h.now)
	events.add(ports.EventTableDeleted, views.Deleted{ID: t.ID()})
	events.flush(ctx, h.publisher)
	return nil
}
