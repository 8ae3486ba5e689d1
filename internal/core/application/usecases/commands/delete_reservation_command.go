package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteReservationCommandIsNotConstructed = errors.New(
	"DeleteReservationCommand must be created via NewDeleteReservationCommand constructor",
)

type DeleteReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteReservationCommand(reservationID kernel.UUID) (DeleteReservationCommand, error) {
	if err := reservationID.Validate(); err != nil {
		return DeleteReservationCommand{}, err
	}
	return DeleteReservationCommand{reservationID: reservationID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteReservationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReservationCommandIsNotConstructed)
}

func (c DeleteReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}
