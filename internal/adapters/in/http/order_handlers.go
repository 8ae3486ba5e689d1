package http

import (
	"net/http"
	"strings"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/application/views"
	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/labstack/echo/v4"
)

type newOrderRequest struct {
	OrderType       string  `json:"orderType"`
	TableID         *string `json:"tableId"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
}

type newOrderItemRequest struct {
	MenuItemID *string      `json:"menuItemId"`
	Name       string       `json:"name"`
	Quantity   int          `json:"quantity"`
	Price      kernel.Money `json:"price"`
	Notes      string       `json:"notes"`
	IsVeg      bool         `json:"isVeg"`
}

type itemStatusRequest struct {
	Status string `json:"status"`
}

// orderActionRequest is the optional body of kot/save/bill. Print is echoed
// back as shouldPrint so the client knows whether to print a slip.
type orderActionRequest struct {
	Print bool `json:"print"`
}

type orderActionResponse struct {
	Order       views.Order `json:"order"`
	ShouldPrint bool        `json:"shouldPrint"`
}

type checkoutRequest struct {
	PaymentMode   string                 `json:"paymentMode"`
	SplitPayments []billing.SplitPayment `json:"splitPayments"`
	Print         bool                   `json:"print"`
}

type checkoutResponse struct {
	Order       views.Order   `json:"order"`
	Invoice     views.Invoice `json:"invoice"`
	ShouldPrint bool          `json:"shouldPrint"`
}

// GetOrders handles GET /api/orders, optionally filtered by ?status=a,b.
func (s *Server) GetOrders(ctx echo.Context) error {
	var filter ports.OrderFilter
	if raw := ctx.QueryParam("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status, err := order.ParseStatus(strings.TrimSpace(part))
			if err != nil {
				return s.fail(ctx, err)
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}
	return s.listOrders(ctx, filter)
}

// GetActiveOrders handles GET /api/orders/active - what the kitchen is working on.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	return s.listOrders(ctx, ports.ActiveOrders())
}

func (s *Server) listOrders(ctx echo.Context, filter ports.OrderFilter) error {
	orders, err := s.queries.Orders.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery(filter))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.queries.Order.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, o)
}

// CreateOrder handles POST /api/orders. A dine-in order with a table is seated immediately.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req newOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	orderType, err := order.ParseType(req.OrderType)
	if err != nil {
		return s.fail(ctx, err)
	}
	tableID, err := optionalUUID(req.TableID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orderType, tableID, order.Customer{
		Name:    req.CustomerName,
		Phone:   req.CustomerPhone,
		Address: req.CustomerAddress,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, views.NewOrder(o))
}

// AddOrderItem handles POST /api/orders/:id/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req newOrderItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	menuItemID, err := optionalUUID(req.MenuItemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, kernel.NewUUID(), commands.ItemDetails{
		MenuItemID: menuItemID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Notes:      req.Notes,
		IsVeg:      req.IsVeg,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.commands.AddOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, views.NewOrder(o))
}

// RemoveOrderItem handles DELETE /api/order-items/:id.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRemoveOrderItemCommand(itemID)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.commands.RemoveOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views.NewOrder(o))
}

// SaveOrder handles POST /api/orders/:id/save.
func (s *Server) SaveOrder(ctx echo.Context) error {
	return s.orderAction(ctx, func(orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewSaveOrderCommand(orderID)
		if err != nil {
			return nil, err
		}
		return s.commands.SaveOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// SendOrderToKitchen handles POST /api/orders/:id/kot.
func (s *Server) SendOrderToKitchen(ctx echo.Context) error {
	return s.orderAction(ctx, func(orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewSendOrderToKitchenCommand(orderID)
		if err != nil {
			return nil, err
		}
		return s.commands.SendOrderToKitchen.Handle(ctx.Request().Context(), cmd)
	})
}

// BillOrder handles POST /api/orders/:id/bill.
func (s *Server) BillOrder(ctx echo.Context) error {
	return s.orderAction(ctx, func(orderID kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewBillOrderCommand(orderID)
		if err != nil {
			return nil, err
		}
		return s.commands.BillOrder.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) orderAction(ctx echo.Context, run func(kernel.UUID) (*order.Order, error)) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req orderActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	o, err := run(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderActionResponse{Order: views.NewOrder(o), ShouldPrint: req.Print})
}

// CheckoutOrder handles POST /api/orders/:id/checkout - pays the order and mints its invoice.
func (s *Server) CheckoutOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req checkoutRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCheckoutOrderCommand(orderID, req.PaymentMode, req.SplitPayments)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.commands.CheckoutOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, checkoutResponse{
		Order:       views.NewOrder(result.Order),
		Invoice:     views.NewInvoice(result.Invoice),
		ShouldPrint: req.Print,
	})
}

// CompleteOrder handles POST /api/orders/:id/complete - hand-over of delivery and pickup orders.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.commands.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views.NewOrder(o))
}

// UpdateOrderItemStatus handles PATCH /api/order-items/:id/status.
func (s *Server) UpdateOrderItemStatus(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := bindItemStatus(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemStatusCommand(itemID, status)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.commands.UpdateOrderItemStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views.NewOrder(o))
}

// UpdateOrderItemsStatus handles PATCH /api/orders/:id/items/status - moves every line at once.
func (s *Server) UpdateOrderItemsStatus(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := bindItemStatus(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemsStatusCommand(orderID, status)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, _, err := s.commands.UpdateOrderItemsStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, views.NewOrder(o))
}

func bindItemStatus(ctx echo.Context) (order.ItemStatus, error) {
	var req itemStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return order.ItemUnknown, errInvalidBody(err)
	}
	return order.ParseItemStatus(req.Status)
}
