package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteTableCommandIsNotConstructed = errors.New(
	"DeleteTableCommand must be created via NewDeleteTableCommand constructor",
)

type DeleteTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteTableCommand(tableID kernel.UUID) (DeleteTableCommand, error) {
	if err := tableID.Validate(); err != nil {
		return DeleteTableCommand{}, err
	}
	return DeleteTableCommand{tableID: tableID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteTableCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTableCommandIsNotConstructed)
}

func (c DeleteTableCommand) TableID() kernel.UUID {
	return c.tableID
}
