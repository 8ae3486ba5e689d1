package commands

import (
	"context"
	"fmt"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// DeleteFloorCommandHandler removes an empty floor. Floors that still carry
// tables are a conflict; the tables have to be moved or deleted first.
type DeleteFloorCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewDeleteFloorCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) DeleteFloorCommandHandler {
	return DeleteFloorCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h DeleteFloorCommandHandler) Handle(ctx context.Context, cmd DeleteFloorCommand) error {
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

	floor, err := uow.FloorRepository().Get(ctx, cmd.FloorID())
	if err != nil {
		return err
	}
	count, err := uow.TableRepository().CountByFloor(ctx, floor.ID())
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewConflictError("floor", fmt.Sprintf("%s still has %d table(s)", floor.Name(), count))
	}
	if err = uow.FloorRepository().Delete(ctx, floor.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	events := newOutbox(h.now)
	events.add(ports.EventFloorDeleted, views.Deleted{ID: floor.ID()})
	events.flush(ctx, h.publisher)
	return nil
}
