package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetFloorPlanQueryIsNotConstructed = errors.New(
	"GetFloorPlanQuery must be created via NewGetFloorPlanQuery constructor",
)

// GetFloorPlanQuery reads every floor and table. The handler also answers
// the tables-only and floors-only listings.
type GetFloorPlanQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFloorPlanQuery() GetFloorPlanQuery {
	return GetFloorPlanQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFloorPlanQuery) Validate() error {
	return q.guard.Validate(ErrGetFloorPlanQueryIsNotConstructed)
}
