package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetDigitalMenuOrders handles GET /api/digital-menu/orders.
func (s *Server) GetDigitalMenuOrders(ctx echo.Context) error {
	if s.queries.DigitalMenuOrders == nil {
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Digital menu is not configured",
		})
	}
	limit, err := queryInt(ctx, "limit", queries.DefaultDigitalMenuOrdersLimit)
	if err != nil {
		return s.fail(ctx, err)
	}
	orders, err := s.queries.DigitalMenuOrders.Handle(ctx.Request().Context(), queries.NewGetDigitalMenuOrdersQuery(limit))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetSyncStatus handles GET /api/digital-menu/sync-status.
func (s *Server) GetSyncStatus(ctx echo.Context) error {
	status, err := s.queries.SyncStatus.Handle(ctx.Request().Context(), queries.NewGetSyncStatusQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, status)
}

// GetMenuItems handles GET /api/menu.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	items, err := s.queries.MenuItems.Handle(ctx.Request().Context(), queries.NewGetMenuItemsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, items)
}
