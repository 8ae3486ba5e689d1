package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"
)

type ReservationRepository interface {
	Add(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error)
	Delete(ctx context.Context, id kernel.UUID) error
	GetAll(ctx context.Context) ([]*reservation.Reservation, error)

	// GetByTable returns every reservation of the table, active or not.
	GetByTable(ctx context.Context, tableID kernel.UUID) ([]*reservation.Reservation, error)
}
