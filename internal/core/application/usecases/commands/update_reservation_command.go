package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateReservationCommandIsNotConstructed = errors.New(
	"UpdateReservationCommand must be created via NewUpdateReservationCommand constructor",
)

// ReservationChanges is a partial update. Nil fields are left unchanged.
type ReservationChanges struct {
	TableID        *kernel.UUID
	CustomerName   *string
	CustomerPhone  *string
	NumberOfPeople *int
	TimeSlot       *string
	Notes          *string
	Status         *reservation.Status
}

type UpdateReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	changes       ReservationChanges

	guard guard.ConstructorGuard
}

func NewUpdateReservationCommand(reservationID kernel.UUID, changes ReservationChanges) (UpdateReservationCommand, error) {
	var tableErr, statusErr error
	if changes.TableID != nil {
		tableErr = changes.TableID.Validate()
	}
	if changes.Status != nil {
		_, statusErr = reservation.ParseStatus(string(*changes.Status))
	}
	if err := errors.Join(reservationID.Validate(), tableErr, statusErr); err != nil {
		return UpdateReservationCommand{}, err
	}
	return UpdateReservationCommand{
		reservationID: reservationID,
		changes:       changes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateReservationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReservationCommandIsNotConstructed)
}

func (c UpdateReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

func (c UpdateReservationCommand) Changes() ReservationChanges {
	return c.changes
}
