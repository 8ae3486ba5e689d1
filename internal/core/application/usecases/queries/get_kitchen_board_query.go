// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return the view documents of package views.
package queries

import (
	"errors"

	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/guard"
)

var ErrGetKitchenBoardQueryIsNotConstructed = errors.New(
	"GetKitchenBoardQuery must be created via NewGetKitchenBoardQuery constructor",
)

// GetKitchenBoardQuery reads the kitchen display. Active selects the orders
// still on the board, History the settled ones; HistoryLimit caps the history
// list, 0 meaning no cap.
//
// Example:
//
//	query := NewGetKitchenBoardQuery(ports.ActiveOrders(), ports.SettledOrders(), 50)
//	board, err := handler.Handle(ctx, query)
type GetKitchenBoardQuery struct {
	active       ports.OrderFilter
	history      ports.OrderFilter
	historyLimit int

	guard guard.ConstructorGuard
}

func NewGetKitchenBoardQuery(active, history ports.OrderFilter, historyLimit int) GetKitchenBoardQuery {
	if historyLimit < 0 {
		historyLimit = 0
	}
	return GetKitchenBoardQuery{
		active:       active,
		history:      history,
		historyLimit: historyLimit,
		guard:        guard.NewConstructorGuard(),
	}
}

func (q GetKitchenBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenBoardQueryIsNotConstructed)
}
