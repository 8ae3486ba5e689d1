package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/ports"
)

// CreateReservationCommandHandler holds a table for a party. A table holds
// at most one active reservation; a second one is a conflict. A free table
// becomes reserved, an occupied one keeps its status.
type CreateReservationCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewCreateReservationCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) CreateReservationCommandHandler {
	return CreateReservationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h CreateReservationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateReservationCommand,
) (*reservation.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	r, err := reservation.NewReservation(cmd.ReservationID(), cmd.TableID(), cmd.Guest(), cmd.TimeSlot(), cmd.Notes())
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

	t, err := uow.TableRepository().Get(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}
	taken, err := hasActiveReservation(ctx, uow.ReservationRepository(), t.ID(), nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, reservationConflict(t)
	}

	if err = uow.ReservationRepository().Add(ctx, r); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	reserved, err := reserveIfFree(ctx, uow.TableRepository(), t)
	if err != nil {
		return nil, err
	}
	if reserved != nil {
		events.addTable(reserved)
	}
	events.add(ports.EventReservationCreated, views.NewReservation(r))

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events.flush(ctx, h.publisher)
	return r, nil
}
