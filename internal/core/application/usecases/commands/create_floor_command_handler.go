package commands

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

// CreateFloorCommandHandler adds a floor. Names are unique regardless of case.
type CreateFloorCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	now        Clock
}

func NewCreateFloorCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	now Clock,
) CreateFloorCommandHandler {
	return CreateFloorCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        clockOrNow(now),
	}
}

func (h CreateFloorCommandHandler) Handle(ctx context.Context, cmd CreateFloorCommand) (*table.Floor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	floor, err := table.NewFloor(cmd.FloorID(), cmd.Name(), cmd.DisplayOrder())
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

	if err = uow.FloorRepository().Add(ctx, floor); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	events := newOutbox(h.now)
	events.add(ports.EventFloorCreated, views.NewFloor(floor))
	events.flush(ctx, h.publisher)
	return floor, nil
}
