package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetDigitalMenuOrdersQueryIsNotConstructed = errors.New(
	"GetDigitalMenuOrdersQuery must be created via NewGetDigitalMenuOrdersQuery constructor",
)

// DefaultDigitalMenuOrdersLimit caps the listing when the caller sets no limit.
const DefaultDigitalMenuOrdersLimit = 100

// GetDigitalMenuOrdersQuery lists documents of the digital menu's order
// collection, newest first.
type GetDigitalMenuOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewGetDigitalMenuOrdersQuery(limit int) GetDigitalMenuOrdersQuery {
	if limit <= 0 {
		limit = DefaultDigitalMenuOrdersLimit
	}
	return GetDigitalMenuOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}
}

func (q GetDigitalMenuOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDigitalMenuOrdersQueryIsNotConstructed)
}
