package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/guard"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// GetMenuItemsQuery lists the menu by category, then name.
type GetMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuItemsQuery() GetMenuItemsQuery {
	return GetMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

type GetMenuItemsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetMenuItemsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{uowFactory: uowFactory}
}

func (h GetMenuItemsQueryHandler) Handle(ctx context.Context, query GetMenuItemsQuery) ([]views.MenuItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	items, err := h.uowFactory.Create().MenuItemRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]views.MenuItem, 0, len(items))
	for _, item := range items {
		out = append(out, views.NewMenuItem(item))
	}
	return out, nil
}
