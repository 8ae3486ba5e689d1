package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/pkg/guard"
)

var ErrCreateReservationCommandIsNotConstructed = errors.New(
	"CreateReservationCommand must be created via NewCreateReservationCommand constructor",
)

type CreateReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	tableID       kernel.UUID
	guest         reservation.Guest
	timeSlot      string
	notes         string

	guard guard.ConstructorGuard
}

func NewCreateReservationCommand(
	reservationID, tableID kernel.UUID,
	guest reservation.Guest,
	timeSlot, notes string,
) (CreateReservationCommand, error) {
	if err := errors.Join(reservationID.Validate(), tableID.Validate()); err != nil {
		return CreateReservationCommand{}, err
	}
	return CreateReservationCommand{
		reservationID: reservationID,
		tableID:       tableID,
		guest:         guest,
		timeSlot:      timeSlot,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateReservationCommand) Validate() error {
	return c.guard.Validate(ErrCreateReservationCommandIsNotConstructed)
}

func (c CreateReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

func (c CreateReservationCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c CreateReservationCommand) Guest() reservation.Guest {
	return c.guest
}

func (c CreateReservationCommand) TimeSlot() string {
	return c.timeSlot
}

func (c CreateReservationCommand) Notes() string {
	return c.notes
}
