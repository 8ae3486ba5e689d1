package commands

import (
	"context"

	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// UpdateTableStatusCommandHandler marks a table free or reserved by hand.
// Tables serving an order are a conflict, and so is freeing a table an
// active reservation still holds.
type UpdateTableStatusCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewUpdateTableStatusCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) UpdateTableStatusCommandHandler {
	return UpdateTableStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h UpdateTableStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTableStatusCommand) (*table.Table, error) {
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

	if cmd.Status() == table.Free && t.CurrentOrderID() == nil {
		active, err := hasActiveReservation(ctx, uow.ReservationRepository(), t.ID(), nil)
		if err != nil {
			return nil, err
		}
		if active {
			return nil, reservationConflict(t)
		}
	}

	changed, err := t.SetAvailability(cmd.Status())
	if err != nil || !changed {
		return t, err
	}
	if err = uow.TableRepository().Update(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	events.addTable(t)
	events.flush(ctx, h.publisher)
	return t, nil
}
