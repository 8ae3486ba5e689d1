package queries

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/ports"
)

type GetDigitalMenuOrdersQueryHandler struct {
	feed ports.DigitalMenuFeed
}

func NewGetDigitalMenuOrdersQueryHandler(feed ports.DigitalMenuFeed) (GetDigitalMenuOrdersQueryHandler, error) {
	if feed == nil {
		return GetDigitalMenuOrdersQueryHandler{}, errors.New("digital menu feed is required")
	}
	return GetDigitalMenuOrdersQueryHandler{feed: feed}, nil
}

func (h GetDigitalMenuOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDigitalMenuOrdersQuery,
) ([]views.DigitalMenuOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	docs, err := h.feed.List(ctx, query.limit)
	if err != nil {
		return nil, fmt.Errorf("list digital menu orders: %w", err)
	}
	return views.NewDigitalMenuOrders(docs), nil
}
