package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// UpdateReservationCommandHandler applies a partial update.
//
// Moving to another table checks the destination for an active reservation
// (conflict), frees the old table once nothing holds it any more and
// reserves the new one if it is free. Cancelling frees the table the same way.
type UpdateReservationCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewUpdateReservationCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) UpdateReservationCommandHandler {
	return UpdateReservationCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h UpdateReservationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateReservationCommand,
) (*reservation.Reservation, error) {
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

	resRepo := uow.ReservationRepository()
	r, err := resRepo.Get(ctx, cmd.ReservationID())
	if err != nil {
		return nil, err
	}

	changes := cmd.Changes()
	oldTableID := r.TableID()

	guest, slot, notes := r.Guest(), r.TimeSlot(), r.Notes()
	if changes.CustomerName != nil {
		guest.Name = *changes.CustomerName
	}
	if changes.CustomerPhone != nil {
		guest.Phone = *changes.CustomerPhone
	}
	if changes.NumberOfPeople != nil {
		guest.PartySize = *changes.NumberOfPeople
	}
	if changes.TimeSlot != nil {
		slot = *changes.TimeSlot
	}
	if changes.Notes != nil {
		notes = *changes.Notes
	}
	if err = r.Update(guest, slot, notes); err != nil {
		return nil, err
	}

	var destination *table.Table
	moved := changes.TableID != nil && !changes.TableID.IsEqual(oldTableID)
	if moved {
		destination, err = uow.TableRepository().Get(ctx, *changes.TableID)
		if err != nil {
			return nil, err
		}
		except := r.ID()
		taken, takenErr := hasActiveReservation(ctx, resRepo, destination.ID(), &except)
		if takenErr != nil {
			return nil, takenErr
		}
		if taken {
			return nil, reservationConflict(destination)
		}
		if err = r.MoveTo(destination.ID()); err != nil {
			return nil, err
		}
	}

	cancelled := changes.Status != nil && *changes.Status == reservation.Cancelled
	if cancelled {
		r.Cancel()
	}

	if err = resRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	var touched []*table.Table
	if moved {
		freed, freeErr := unreserveIfUnclaimed(ctx, uow, oldTableID)
		if freeErr != nil {
			return nil, freeErr
		}
		touched = append(touched, freed)
		if r.IsActive() {
			reserved, reserveErr := reserveIfFree(ctx, uow.TableRepository(), destination)
			if reserveErr != nil {
				return nil, reserveErr
			}
			touched = append(touched, reserved)
		}
	}
	if cancelled {
		freed, freeErr := unreserveIfUnclaimed(ctx, uow, r.TableID())
		if freeErr != nil {
			return nil, freeErr
		}
		touched = append(touched, freed)
	}
	addTables(events, touched)
	events.add(ports.EventReservationUpdated, views.NewReservation(r))

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events.flush(ctx, h.publisher)
	return r, nil
}

// addTables records one table_updated event per changed table.
func addTables(events *outbox, tables []*table.Table) {
	seen := make(map[kernel.UUID]struct{})
	for _, t := range tables {
		if t == nil {
			continue
		}
		if _, dup := seen[t.ID()]; dup {
			continue
		}
		seen[t.ID()] = struct{}{}
		events.addTable(t)
	}
}
