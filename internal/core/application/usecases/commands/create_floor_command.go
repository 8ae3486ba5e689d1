package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateFloorCommandIsNotConstructed = errors.New(
	"CreateFloorCommand must be created via NewCreateFloorCommand constructor",
)

type CreateFloorCommand struct { //nolint:recvcheck //using for validation
	floorID      kernel.UUID
	name         string
	displayOrder int

	guard guard.ConstructorGuard
}

func NewCreateFloorCommand(floorID kernel.UUID, name string, displayOrder int) (CreateFloorCommand, error) {
	if err := floorID.Validate(); err != nil {
		return CreateFloorCommand{}, err
	}
	return CreateFloorCommand{
		floorID:      floorID,
		name:         name,
		displayOrder: displayOrder,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateFloorCommand) Validate() error {
	return c.guard.Validate(ErrCreateFloorCommandIsNotConstructed)
}

func (c CreateFloorCommand) FloorID() kernel.UUID {
	return c.floorID
}

func (c CreateFloorCommand) Name() string {
	return c.name
}

func (c CreateFloorCommand) DisplayOrder() int {
	return c.displayOrder
}
