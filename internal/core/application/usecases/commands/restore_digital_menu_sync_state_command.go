package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrRestoreDigitalMenuSyncStateCommandIsNotConstructed = errors.New(
	"RestoreDigitalMenuSyncStateCommand must be created via NewRestoreDigitalMenuSyncStateCommand constructor",
)

// RestoreDigitalMenuSyncStateCommand rebuilds the sync cache from the synced
// flags of the feed. It runs once before the first poll.
type RestoreDigitalMenuSyncStateCommand struct {
	guard guard.ConstructorGuard
}

func NewRestoreDigitalMenuSyncStateCommand() RestoreDigitalMenuSyncStateCommand {
	return RestoreDigitalMenuSyncStateCommand{guard: guard.NewConstructorGuard()}
}

func (c RestoreDigitalMenuSyncStateCommand) Validate() error {
	return c.guard.Validate(ErrRestoreDigitalMenuSyncStateCommandIsNotConstructed)
}
