package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"

	"github.com/labstack/echo/v4"
)

type newReservationRequest struct {
	TableID        string `json:"tableId"`
	CustomerName   string `json:"customerName"`
	CustomerPhone  string `json:"customerPhone"`
	NumberOfPeople int    `json:"numberOfPeople"`
	TimeSlot       string `json:"timeSlot"`
	Notes          string `json:"notes"`
}

type reservationUpdateRequest struct {
	TableID        *string `json:"tableId"`
	CustomerName   *string `json:"customerName"`
	CustomerPhone  *string `json:"customerPhone"`
	NumberOfPeople *int    `json:"numberOfPeople"`
	TimeSlot       *string `json:"timeSlot"`
	Notes          *string `json:"notes"`
	Status         *string `json:"status"`
}

// GetReservations handles GET /api/reservations.
func (s *Server) GetReservations(ctx echo.Context) error {
	return s.listReservations(ctx, nil)
}

// GetReservationsByTable handles GET /api/reservations/table/:tableId.
func (s *Server) GetReservationsByTable(ctx echo.Context) error {
	tableID, err := pathUUID(ctx, "tableId")
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.listReservations(ctx, &tableID)
}

func (s *Server) listReservations(ctx echo.Context, tableID *kernel.UUID) error {
	query, err := queries.NewGetReservationsQuery(tableID)
	if err != nil {
		return s.fail(ctx, err)
	}
	reservations, err := s.queries.Reservations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, reservations)
}

// CreateReservation handles POST /api/reservations. A free table becomes reserved.
func (s *Server) CreateReservation(ctx echo.Context) error {
	var req newReservationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	tableID, err := kernel.UUIDFromString(req.TableID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateReservationCommand(
		kernel.NewUUID(),
		tableID,
		reservation.Guest{Name: req.CustomerName, Phone: req.CustomerPhone, PartySize: req.NumberOfPeople},
		req.TimeSlot,
		req.Notes,
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	r, err := s.commands.CreateReservation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, views.NewReservation(r))
}

// UpdateReservation handles PATCH /api/reservations/:id.
func (s *Server) UpdateReservation(ctx echo.Context) error {
	reservationID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req reservationUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	tableID, err := optionalUUID(req.TableID)
	if err != nil {
		return s.fail(ctx, err)
	}
	changes := commands.ReservationChanges{
		TableID:        tableID,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		NumberOfPeople: req.NumberOfPeople,
		TimeSlot:       req.TimeSlot,
		Notes:          req.Notes,
	}
	if req.Status != nil {
		status, parseErr := reservation.ParseStatus(*req.Status)
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		changes.Status = &status
	}

	cmd, err := commands.NewUpdateReservationCommand(reservationID, changes)
	if err != nil {
		return s.fail(ctx, err)
	}
	r, err := s.commands.UpdateReservation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views.NewReservation(r))
}

// DeleteReservation handles DELETE /api/reservations/:id.
func (s *Server) DeleteReservation(ctx echo.Context) error {
	reservationID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteReservationCommand(reservationID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.DeleteReservation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
