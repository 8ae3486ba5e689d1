package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrSyncDigitalMenuOrdersCommandIsNotConstructed = errors.New(
	"SyncDigitalMenuOrdersCommand must be created via NewSyncDigitalMenuOrdersCommand constructor",
)

// SyncDigitalMenuOrdersCommand runs one poll cycle of the digital-menu sync.
type SyncDigitalMenuOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewSyncDigitalMenuOrdersCommand() SyncDigitalMenuOrdersCommand {
	return SyncDigitalMenuOrdersCommand{guard: guard.NewConstructorGuard()}
}

func (c SyncDigitalMenuOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncDigitalMenuOrdersCommandIsNotConstructed)
}
