package queries

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/ports"
)

type GetOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{uowFactory: uowFactory}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]views.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	orders, err := h.uowFactory.Create().OrderRepository().Find(ctx, query.filter)
	if err != nil {
		return nil, err
	}
	return views.NewOrders(orders), nil
}

type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle returns an ObjectNotFoundError for unknown ids.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (views.Order, error) {
	if err := query.Validate(); err != nil {
		return views.Order{}, err
	}
	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, query.orderID)
	if err != nil {
		return views.Order{}, err
	}
	return views.NewOrder(o), nil
}
