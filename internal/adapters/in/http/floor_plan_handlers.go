package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"

	"github.com/labstack/echo/v4"
)

type newFloorRequest struct {
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

type tableOrderRequest struct {
	OrderID *string `json:"orderId"`
}

type tableStatusRequest struct {
	Status string `json:"status"`
}

type newTableRequest struct {
	TableNumber string  `json:"tableNumber"`
	Seats       int     `json:"seats"`
	FloorID     *string `json:"floorId"`
}

// GetFloorPlan handles GET /api/floors - floors and tables in display order.
func (s *Server) GetFloorPlan(ctx echo.Context) error {
	plan, err := s.queries.FloorPlan.Handle(ctx.Request().Context(), queries.NewGetFloorPlanQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, plan)
}

// GetTables handles GET /api/tables.
func (s *Server) GetTables(ctx echo.Context) error {
	plan, err := s.queries.FloorPlan.Handle(ctx.Request().Context(), queries.NewGetFloorPlanQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, plan.Tables)
}

// CreateFloor handles POST /api/floors.
func (s *Server) CreateFloor(ctx echo.Context) error {
	var req newFloorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateFloorCommand(kernel.NewUUID(), req.Name, req.DisplayOrder)
	if err != nil {
		return s.fail(ctx, err)
	}
	floor, err := s.commands.CreateFloor.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, views.NewFloor(floor))
}

// DeleteFloor handles DELETE /api/floors/:id. Floors with tables are kept.
func (s *Server) DeleteFloor(ctx echo.Context) error {
	floorID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteFloorCommand(floorID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.DeleteFloor.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateTable handles POST /api/tables.
func (s *Server) CreateTable(ctx echo.Context) error {
	var req newTableRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	floorID, err := optionalUUID(req.FloorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateTableCommand(kernel.NewUUID(), floorID, req.TableNumber, req.Seats)
	if err != nil {
		return s.fail(ctx, err)
	}
	t, err := s.commands.CreateTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, views.NewTable(t))
}

// SeatOrder handles PATCH /api/tables/:id/order. A null orderId clears the table.
func (s *Server) SeatOrder(ctx echo.Context) error {
	tableID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req tableOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	orderID, err := optionalUUID(req.OrderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSeatOrderCommand(tableID, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	t, err := s.commands.SeatOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views.NewTable(t))
}

// UpdateTableStatus handles PATCH /api/tables/:id/status.
func (s *Server) UpdateTableStatus(ctx echo.Context) error {
	tableID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req tableStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	status, err := table.ParseStatus(req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateTableStatusCommand(tableID, status)
	if err != nil {
		return s.fail(ctx, err)
	}
	t, err := s.commands.UpdateTableStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views.NewTable(t))
}

// DeleteTable handles DELETE /api/tables/:id.
func (s *Server) DeleteTable(ctx echo.Context) error {
	tableID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteTableCommand(tableID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.DeleteTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
