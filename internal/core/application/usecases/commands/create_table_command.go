package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateTableCommandIsNotConstructed = errors.New(
	"CreateTableCommand must be created via NewCreateTableCommand constructor",
)

type CreateTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	floorID *kernel.UUID
	number  string
	seats   int

	guard guard.ConstructorGuard
}

// NewCreateTableCommand accepts a nil floor for tables outside any floor plan.
func NewCreateTableCommand(tableID kernel.UUID, floorID *kernel.UUID, number string, seats int) (CreateTableCommand, error) {
	var floorErr error
	if floorID != nil {
		floorErr = floorID.Validate()
	}
	if err := errors.Join(tableID.Validate(), floorErr); err != nil {
		return CreateTableCommand{}, err
	}
	return CreateTableCommand{
		tableID: tableID,
		floorID: floorID,
		number:  number,
		seats:   seats,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

func (c CreateTableCommand) TableID() kernel.UUID {
	return c.tableID
}

func (c CreateTableCommand) FloorID() *kernel.UUID {
	return c.floorID
}

func (c CreateTableCommand) Number() string {
	return c.number
}

func (c CreateTableCommand) Seats() int {
	return c.seats
}
