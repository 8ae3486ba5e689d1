package queries

import (
	"context"
	"time"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// KitchenTicket is one order as the kitchen display shows it.
type KitchenTicket struct {
	views.Order
	TableLabel     string                 `json:"tableLabel"`
	KitchenStatus  services.KitchenStatus `json:"kitchenStatus"`
	ElapsedSeconds int64                  `json:"elapsedSeconds"`
}

type KitchenBoardView struct {
	Current []KitchenTicket `json:"current"`
	Served  []KitchenTicket `json:"served"`
	History []KitchenTicket `json:"history"`
}

// GetKitchenBoardQueryHandler builds the board and keeps the ticket timers
// in step with it. Timers of orders that left both lists are dropped.
type GetKitchenBoardQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	timers     *services.KitchenTimers
}

// NewGetKitchenBoardQueryHandler creates the handler. A nil timer store
// gets a private one on the wall clock.
func NewGetKitchenBoardQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	timers *services.KitchenTimers,
) GetKitchenBoardQueryHandler {
	if timers == nil {
		timers = services.NewKitchenTimers(time.Now)
	}
	return GetKitchenBoardQueryHandler{uowFactory: uowFactory, timers: timers}
}

func (h GetKitchenBoardQueryHandler) Handle(ctx context.Context, query GetKitchenBoardQuery) (KitchenBoardView, error) {
	if err := query.Validate(); err != nil {
		return KitchenBoardView{}, err
	}

	uow := h.uowFactory.Create()
	active, err := uow.OrderRepository().Find(ctx, query.active)
	if err != nil {
		return KitchenBoardView{}, err
	}
	history, err := uow.OrderRepository().Find(ctx, query.history)
	if err != nil {
		return KitchenBoardView{}, err
	}
	tables, err := uow.TableRepository().GetAll(ctx)
	if err != nil {
		return KitchenBoardView{}, err
	}
	numbers := make(map[kernel.UUID]string, len(tables))
	for _, t := range tables {
		numbers[t.ID()] = t.Number()
	}

	board := services.BuildKitchenBoard(active, history)
	if query.historyLimit > 0 && len(board.History) > query.historyLimit {
		board.History = board.History[:query.historyLimit]
	}

	keep := make([]kernel.UUID, 0, len(board.Current)+len(board.Served)+len(board.History))
	ticket := func(o *order.Order) KitchenTicket {
		keep = append(keep, o.ID())
		return KitchenTicket{
			Order:          views.NewOrder(o),
			TableLabel:     tableLabel(o, numbers),
			KitchenStatus:  services.OverallKitchenStatus(o),
			ElapsedSeconds: int64(h.timers.Observe(o) / time.Second),
		}
	}
	view := KitchenBoardView{
		Current: mapOrders(board.Current, ticket),
		Served:  mapOrders(board.Served, ticket),
		History: mapOrders(board.History, ticket),
	}
	h.timers.Retain(keep)
	return view, nil
}

func mapOrders[T any](orders []*order.Order, fn func(*order.Order) T) []T {
	out := make([]T, 0, len(orders))
	for _, o := range orders {
		out = append(out, fn(o))
	}
	return out
}

func tableLabel(o *order.Order, numbers map[kernel.UUID]string) string {
	switch o.Type() {
	case order.Delivery:
		return "Delivery"
	case order.Pickup:
		return "Pickup"
	}
	if o.TableID() != nil {
		if n, ok := numbers[*o.TableID()]; ok {
			return "Table " + n
		}
	}
	return "Table Unknown"
}
