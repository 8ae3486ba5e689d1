package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

type SetSettingCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewSetSettingCommandHandler(uowFactory ports.UnitOfWorkFactory) SetSettingCommandHandler {
	return SetSettingCommandHandler{uowFactory: uowFactory}
}

func (h SetSettingCommandHandler) Handle(ctx context.Context, cmd SetSettingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingRepository().Set(ctx, cmd.Key(), cmd.Value()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
