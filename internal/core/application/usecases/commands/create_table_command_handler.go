package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// CreateTableCommandHandler adds a free table. The floor, when given, must
// exist, and the number must be new on that floor.
type CreateTableCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewCreateTableCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) CreateTableCommandHandler {
	return CreateTableCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) (*table.Table, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	t, err := table.NewTable(cmd.TableID(), cmd.FloorID(), cmd.Number(), cmd.Seats())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.FloorID() != nil {
		if _, err = uow.FloorRepository().Get(ctx, *cmd.FloorID()); err != nil {
			return nil, err
		}
	}
	if err = uow.TableRepository().Add(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	events.add(ports.EventTableCreated, views.NewTable(t))
	events.flush(ctx, h.publisher)
	return t, nil
}
