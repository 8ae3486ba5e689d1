package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand deletes one order line by its id.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveOrderItemCommand(itemID kernel.UUID) (RemoveOrderItemCommand, error) {
	if err := itemID.Validate(); err != nil {
		return RemoveOrderItemCommand{}, err
	}
	return RemoveOrderItemCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

func (c RemoveOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
