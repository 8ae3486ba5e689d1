package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteFloorCommandIsNotConstructed = errors.New(
	"DeleteFloorCommand must be created via NewDeleteFloorCommand constructor",
)

type DeleteFloorCommand struct { //nolint:recvcheck //using for validation
	floorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteFloorCommand(floorID kernel.UUID) (DeleteFloorCommand, error) {
	if err := floorID.Validate(); err != nil {
		return DeleteFloorCommand{}, err
	}
	return DeleteFloorCommand{floorID: floorID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteFloorCommand) Validate() error {
	return c.guard.Validate(ErrDeleteFloorCommandIsNotConstructed)
}

func (c DeleteFloorCommand) FloorID() kernel.UUID {
	return c.floorID
}
