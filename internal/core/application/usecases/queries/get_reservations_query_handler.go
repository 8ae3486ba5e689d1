package queries

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/ports"
)

type GetReservationsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetReservationsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetReservationsQueryHandler {
	return GetReservationsQueryHandler{uowFactory: uowFactory}
}

func (h GetReservationsQueryHandler) Handle(ctx context.Context, query GetReservationsQuery) ([]views.Reservation, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	repo := h.uowFactory.Create().ReservationRepository()
	var (
		rs  []*reservation.Reservation
		err error
	)
	if query.tableID != nil {
		rs, err = repo.GetByTable(ctx, *query.tableID)
	} else {
		rs, err = repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return views.NewReservations(rs), nil
}
