package http

import (
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/application/views"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CommandHandlers groups the state-changing use cases exposed over HTTP.
type CommandHandlers struct {
	CreateFloor            commands.CreateFloorCommandHandler
	DeleteFloor            commands.DeleteFloorCommandHandler
	CreateTable            commands.CreateTableCommandHandler
	SeatOrder              commands.SeatOrderCommandHandler
	UpdateTableStatus      commands.UpdateTableStatusCommandHandler
	DeleteTable            commands.DeleteTableCommandHandler
	CreateOrder            commands.CreateOrderCommandHandler
	AddOrderItem           commands.AddOrderItemCommandHandler
	RemoveOrderItem        commands.RemoveOrderItemCommandHandler
	SaveOrder              commands.SaveOrderCommandHandler
	SendOrderToKitchen     commands.SendOrderToKitchenCommandHandler
	BillOrder              commands.BillOrderCommandHandler
	CheckoutOrder          commands.CheckoutOrderCommandHandler
	CompleteOrder          commands.CompleteOrderCommandHandler
	UpdateOrderItemStatus  commands.UpdateOrderItemStatusCommandHandler
	UpdateOrderItemsStatus commands.UpdateOrderItemsStatusCommandHandler
	RegenerateInvoice      commands.RegenerateInvoiceCommandHandler
	CreateReservation      commands.CreateReservationCommandHandler
	UpdateReservation      commands.UpdateReservationCommandHandler
	DeleteReservation      commands.DeleteReservationCommandHandler
	SetSetting             commands.SetSettingCommandHandler
}

// QueryHandlers groups the read use cases exposed over HTTP.
// DigitalMenuOrders is nil when no digital-menu feed is configured.
type QueryHandlers struct {
	FloorPlan         queries.GetFloorPlanQueryHandler
	Orders            queries.GetOrdersQueryHandler
	Order             queries.GetOrderQueryHandler
	KitchenBoard      queries.GetKitchenBoardQueryHandler
	Invoices          queries.GetInvoicesQueryHandler
	Invoice           queries.GetInvoiceQueryHandler
	Reservations      queries.GetReservationsQueryHandler
	MenuItems         queries.GetMenuItemsQueryHandler
	Setting           queries.GetSettingQueryHandler
	SyncStatus        queries.GetSyncStatusQueryHandler
	DigitalMenuOrders *queries.GetDigitalMenuOrdersQueryHandler
}

// InvoiceRenderer turns an invoice into a printable document.
type InvoiceRenderer interface {
	Render(inv views.Invoice) ([]byte, error)
}

// Server handles the REST API. It translates HTTP requests into commands
// and queries and maps their errors onto status codes.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	renderer InvoiceRenderer
	logger   *zap.Logger

	kitchenHistoryLimit int
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	renderer InvoiceRenderer,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		commands:            commandHandlers,
		queries:             queryHandlers,
		renderer:            renderer,
		logger:              logger.With(zap.String("component", "http")),
		kitchenHistoryLimit: defaultKitchenHistoryLimit,
	}
}

// RegisterHandlers mounts every REST route on e.
func (s *Server) RegisterHandlers(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/floors", s.GetFloorPlan)
	api.POST("/floors", s.CreateFloor)
	api.DELETE("/floors/:id", s.DeleteFloor)
	api.GET("/tables", s.GetTables)
	api.POST("/tables", s.CreateTable)
	api.PATCH("/tables/:id/order", s.SeatOrder)
	api.PATCH("/tables/:id/status", s.UpdateTableStatus)
	api.DELETE("/tables/:id", s.DeleteTable)

	api.GET("/menu", s.GetMenuItems)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/items", s.AddOrderItem)
	api.PATCH("/orders/:id/items/status", s.UpdateOrderItemsStatus)
	api.POST("/orders/:id/kot", s.SendOrderToKitchen)
	api.POST("/orders/:id/save", s.SaveOrder)
	api.POST("/orders/:id/bill", s.BillOrder)
	api.POST("/orders/:id/checkout", s.CheckoutOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.PATCH("/order-items/:id/status", s.UpdateOrderItemStatus)
	api.DELETE("/order-items/:id", s.RemoveOrderItem)

	api.GET("/kitchen", s.GetKitchenBoard)

	api.GET("/invoices", s.GetInvoices)
	api.GET("/invoices/:id", s.GetInvoice)
	api.GET("/invoices/number/:invoiceNumber", s.GetInvoiceByNumber)
	api.POST("/invoices/:id/regenerate", s.RegenerateInvoice)
	api.GET("/invoices/:id/pdf", s.GetInvoicePDF)

	api.GET("/reservations", s.GetReservations)
	api.POST("/reservations", s.CreateReservation)
	api.GET("/reservations/table/:tableId", s.GetReservationsByTable)
	api.PATCH("/reservations/:id", s.UpdateReservation)
	api.DELETE("/reservations/:id", s.DeleteReservation)

	api.GET("/digital-menu/orders", s.GetDigitalMenuOrders)
	api.GET("/digital-menu/sync-status", s.GetSyncStatus)

	api.GET("/settings/:key", s.GetSetting)
	api.PUT("/settings/:key", s.SetSetting)
}
