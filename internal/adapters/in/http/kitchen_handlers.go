package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const defaultKitchenHistoryLimit = 50

// GetKitchenBoard handles GET /api/kitchen.
func (s *Server) GetKitchenBoard(ctx echo.Context) error {
	limit, err := queryInt(ctx, "historyLimit", s.kitchenHistoryLimit)
	if err != nil {
		return s.fail(ctx, err)
	}
	query := queries.NewGetKitchenBoardQuery(ports.ActiveOrders(), ports.SettledOrders(), limit)
	board, err := s.queries.KitchenBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, board)
}
