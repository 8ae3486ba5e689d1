package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetReservationsQueryIsNotConstructed = errors.New(
	"GetReservationsQuery must be created via NewGetReservationsQuery constructor",
)

// GetReservationsQuery lists reservations ordered by time slot, optionally
// only those of one table.
type GetReservationsQuery struct {
	tableID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetReservationsQuery(tableID *kernel.UUID) (GetReservationsQuery, error) {
	if tableID != nil {
		if err := tableID.Validate(); err != nil {
			return GetReservationsQuery{}, err
		}
	}
	return GetReservationsQuery{tableID: tableID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetReservationsQuery) Validate() error {
	return q.guard.Validate(ErrGetReservationsQueryIsNotConstructed)
}
