package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateTableStatusCommandIsNotConstructed = errors.New(
	"UpdateTableStatusCommand must be created via NewUpdateTableStatusCommand constructor",
)

type UpdateTableStatusCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	status  table.Status

	guard guard.ConstructorGuard
}

func NewUpdateTableStatusCommand(tableID kernel.UUID, status table.Status) (UpdateTableStatusCommand, error) {
	if err := errors.Join(tableID.Validate(), status.Validate()); err != nil {
		return UpdateTableStatusCommand{}, err
	}
	return UpdateTableStatusCommand{
		tableID: tableID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateTableStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTableStatusCommandIsNotConstructed)
}

func (c UpdateTableStatusCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c UpdateTableStatusCommand) Status() table.Status {
	return c.status
}
