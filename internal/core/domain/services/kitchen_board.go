package services

import (
	"slices"

	"restaurant/internal/core/domain/model/order"
)

// KitchenStatus is the overall state of one kitchen ticket.
type KitchenStatus string

const (
	KitchenNew       KitchenStatus = "new"
	KitchenPreparing KitchenStatus = "preparing"
	KitchenReady     KitchenStatus = "ready"
	KitchenServed    KitchenStatus = "served"
)

// KitchenBoard is the kitchen display: tickets still being worked on, tickets
// fully served but not yet settled, and settled history.
type KitchenBoard struct {
	Current []*order.Order
	Served  []*order.Order
	History []*order.Order
}

// BuildKitchenBoard partitions active orders into current and served and
// passes history through. Both groups are sorted oldest first, history
// newest first. The inputs are not modified.
func BuildKitchenBoard(active, history []*order.Order) KitchenBoard {
	board := KitchenBoard{
		Current: []*order.Order{},
		Served:  []*order.Order{},
		History: slices.Clone(history),
	}
	for _, o := range active {
		if o.AllItemsServed() {
			board.Served = append(board.Served, o)
			continue
		}
		board.Current = append(board.Current, o)
	}

	byCreated := func(a, b *order.Order) int { return a.CreatedAt().Compare(b.CreatedAt()) }
	slices.SortStableFunc(board.Current, byCreated)
	slices.SortStableFunc(board.Served, byCreated)
	slices.SortStableFunc(board.History, func(a, b *order.Order) int { return byCreated(b, a) })
	return board
}

// OverallKitchenStatus summarises a ticket the way the kitchen reads it.
func OverallKitchenStatus(o *order.Order) KitchenStatus {
	switch {
	case o.AllItemsServed():
		return KitchenServed
	case o.AllItemsReadyOrServed():
		return KitchenReady
	}
	for _, s := range o.ItemStatuses() {
		if s == order.ItemPreparing || s == order.ItemReady {
			return KitchenPreparing
		}
	}
	return KitchenNew
}
