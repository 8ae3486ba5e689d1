// Package views renders aggregates as the JSON documents shared by the
// REST API and the change events.
package views

import (
	"time"

	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/digitalmenu"
	"restaurant/internal/core/domain/model/invoice"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/domain/model/table"
)

type Item struct {
	ID         kernel.UUID  `json:"id"`
	OrderID    kernel.UUID  `json:"orderId"`
	MenuItemID *kernel.UUID `json:"menuItemId"`
	Name       string       `json:"name"`
	Quantity   int          `json:"quantity"`
	Price      kernel.Money `json:"price"`
	Notes      string       `json:"notes,omitempty"`
	Status     string       `json:"status"`
	IsVeg      bool         `json:"isVeg"`
}

type Order struct {
	ID              kernel.UUID  `json:"id"`
	TableID         *kernel.UUID `json:"tableId"`
	OrderType       string       `json:"orderType"`
	Source          string       `json:"source"`
	ExternalRef     string       `json:"externalRef,omitempty"`
	Status          string       `json:"status"`
	Total           kernel.Money `json:"total"`
	CustomerName    string       `json:"customerName,omitempty"`
	CustomerPhone   string       `json:"customerPhone,omitempty"`
	CustomerAddress string       `json:"customerAddress,omitempty"`
	PaymentMode     string       `json:"paymentMode,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	BilledAt        *time.Time   `json:"billedAt"`
	PaidAt          *time.Time   `json:"paidAt"`
	CompletedAt     *time.Time   `json:"completedAt"`
	Items           []Item       `json:"items"`
}

type Table struct {
	ID             kernel.UUID  `json:"id"`
	TableNumber    string       `json:"tableNumber"`
	Seats          int          `json:"seats"`
	Status         string       `json:"status"`
	CurrentOrderID *kernel.UUID `json:"currentOrderId"`
	FloorID        *kernel.UUID `json:"floorId"`
}

type Floor struct {
	ID           kernel.UUID `json:"id"`
	Name         string      `json:"name"`
	DisplayOrder int         `json:"displayOrder"`
}

type Invoice struct {
	ID            kernel.UUID            `json:"id"`
	InvoiceNumber string                 `json:"invoiceNumber"`
	OrderID       kernel.UUID            `json:"orderId"`
	TableNumber   string                 `json:"tableNumber,omitempty"`
	FloorName     string                 `json:"floorName,omitempty"`
	CustomerName  string                 `json:"customerName,omitempty"`
	CustomerPhone string                 `json:"customerPhone,omitempty"`
	Subtotal      kernel.Money           `json:"subtotal"`
	Tax           kernel.Money           `json:"tax"`
	Discount      kernel.Money           `json:"discount"`
	Total         kernel.Money           `json:"total"`
	PaymentMode   string                 `json:"paymentMode"`
	SplitPayments []billing.SplitPayment `json:"splitPayments"`
	Status        string                 `json:"status"`
	Items         []billing.Line         `json:"items"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type Reservation struct {
	ID             kernel.UUID `json:"id"`
	TableID        kernel.UUID `json:"tableId"`
	CustomerName   string      `json:"customerName"`
	CustomerPhone  string      `json:"customerPhone"`
	NumberOfPeople int         `json:"numberOfPeople"`
	TimeSlot       string      `json:"timeSlot"`
	Notes          string      `json:"notes,omitempty"`
	Status         string      `json:"status"`
}

type MenuItem struct {
	ID        kernel.UUID  `json:"id"`
	Name      string       `json:"name"`
	Category  string       `json:"category"`
	Price     kernel.Money `json:"price"`
	IsVeg     bool         `json:"isVeg"`
	Available bool         `json:"available"`
}

type DigitalMenuItem struct {
	MenuItemID   string  `json:"menuItemId"`
	MenuItemName string  `json:"menuItemName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Total        float64 `json:"total"`
	SpiceLevel   string  `json:"spiceLevel,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

type DigitalMenuOrder struct {
	ID            string            `json:"_id"`
	CustomerID    string            `json:"customerId,omitempty"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	Items         []DigitalMenuItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	Tax           float64           `json:"tax"`
	Total         float64           `json:"total"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"paymentStatus,omitempty"`
	PaymentMethod string            `json:"paymentMethod,omitempty"`
	TableNumber   string            `json:"tableNumber,omitempty"`
	FloorNumber   string            `json:"floorNumber,omitempty"`
	OrderDate     time.Time         `json:"orderDate"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	SyncedToPOS   bool              `json:"syncedToPOS"`
	SyncedAt      *time.Time        `json:"syncedAt"`
	POSOrderID    string            `json:"posOrderId,omitempty"`
}

// DigitalMenuOrderSynced is the payload of digital_menu_order_synced.
type DigitalMenuOrderSynced struct {
	DigitalMenuOrderID string       `json:"digitalMenuOrderId"`
	POSOrderID         kernel.UUID  `json:"posOrderId"`
	TableID            *kernel.UUID `json:"tableId"`
}

// Deleted is the payload of *_deleted events.
type Deleted struct {
	ID      kernel.UUID  `json:"id"`
	OrderID *kernel.UUID `json:"orderId,omitempty"`
}

func NewItem(orderID kernel.UUID, i *order.Item) Item {
	return Item{
		ID:         i.ID(),
		OrderID:    orderID,
		MenuItemID: i.MenuItemID(),
		Name:       i.Name(),
		Quantity:   i.Quantity(),
		Price:      i.Price(),
		Notes:      i.Notes(),
		Status:     i.Status().String(),
		IsVeg:      i.IsVeg(),
	}
}

func NewOrder(o *order.Order) Order {
	items := make([]Item, 0, len(o.Items()))
	for _, i := range o.Items() {
		items = append(items, NewItem(o.ID(), i))
	}
	c := o.Customer()
	return Order{
		ID:              o.ID(),
		TableID:         o.TableID(),
		OrderType:       string(o.Type()),
		Source:          string(o.Source()),
		ExternalRef:     o.ExternalRef(),
		Status:          o.Status().String(),
		Total:           o.Total(),
		CustomerName:    c.Name,
		CustomerPhone:   c.Phone,
		CustomerAddress: c.Address,
		PaymentMode:     o.PaymentMode(),
		CreatedAt:       o.CreatedAt(),
		BilledAt:        o.BilledAt(),
		PaidAt:          o.PaidAt(),
		CompletedAt:     o.CompletedAt(),
		Items:           items,
	}
}

func NewOrders(orders []*order.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrder(o))
	}
	return out
}

func NewTable(t *table.Table) Table {
	return Table{
		ID:             t.ID(),
		TableNumber:    t.Number(),
		Seats:          t.Seats(),
		Status:         t.Status().String(),
		CurrentOrderID: t.CurrentOrderID(),
		FloorID:        t.FloorID(),
	}
}

func NewTables(tables []*table.Table) []Table {
	out := make([]Table, 0, len(tables))
	for _, t := range tables {
		out = append(out, NewTable(t))
	}
	return out
}

func NewFloor(f *table.Floor) Floor {
	return Floor{ID: f.ID(), Name: f.Name(), DisplayOrder: f.DisplayOrder()}
}

func NewFloors(floors []*table.Floor) []Floor {
	out := make([]Floor, 0, len(floors))
	for _, f := range floors {
		out = append(out, NewFloor(f))
	}
	return out
}

func NewInvoice(inv *invoice.Invoice) Invoice {
	totals := inv.Totals()
	party := inv.Party()
	splits := inv.Splits()
	if splits == nil {
		splits = []billing.SplitPayment{}
	}
	return Invoice{
		ID:            inv.ID(),
		InvoiceNumber: inv.Number(),
		OrderID:       inv.OrderID(),
		TableNumber:   party.TableNumber,
		FloorName:     party.FloorName,
		CustomerName:  party.CustomerName,
		CustomerPhone: party.CustomerPhone,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		Total:         totals.Total,
		PaymentMode:   inv.PaymentMode(),
		SplitPayments: splits,
		Status:        inv.Status(),
		Items:         inv.Lines(),
		CreatedAt:     inv.CreatedAt(),
		UpdatedAt:     inv.UpdatedAt(),
	}
}

func NewInvoices(invoices []*invoice.Invoice) []Invoice {
	out := make([]Invoice, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, NewInvoice(inv))
	}
	return out
}

func NewReservation(r *reservation.Reservation) Reservation {
	g := r.Guest()
	return Reservation{
		ID:             r.ID(),
		TableID:        r.TableID(),
		CustomerName:   g.Name,
		CustomerPhone:  g.Phone,
		NumberOfPeople: g.PartySize,
		TimeSlot:       r.TimeSlot(),
		Notes:          r.Notes(),
		Status:         string(r.Status()),
	}
}

func NewReservations(rs []*reservation.Reservation) []Reservation {
	out := make([]Reservation, 0, len(rs))
	for _, r := range rs {
		out = append(out, NewReservation(r))
	}
	return out
}

func NewMenuItem(m *menu.MenuItem) MenuItem {
	return MenuItem{
		ID:        m.ID(),
		Name:      m.Name(),
		Category:  m.Category(),
		Price:     m.Price(),
		IsVeg:     m.IsVeg(),
		Available: m.Available(),
	}
}

func NewDigitalMenuOrder(d digitalmenu.Order) DigitalMenuOrder {
	items := make([]DigitalMenuItem, 0, len(d.Items))
	for _, i := range d.Items {
		items = append(items, DigitalMenuItem{
			MenuItemID:   i.MenuItemID,
			MenuItemName: i.MenuItemName,
			Quantity:     i.Quantity,
			Price:        i.Price,
			Total:        i.Total,
			SpiceLevel:   i.SpiceLevel,
			Notes:        i.Notes,
		})
	}
	return DigitalMenuOrder{
		ID:            d.ID,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Items:         items,
		Subtotal:      d.Subtotal,
		Tax:           d.Tax,
		Total:         d.Total,
		Status:        string(d.Status),
		PaymentStatus: d.PaymentStatus,
		PaymentMethod: d.PaymentMethod,
		TableNumber:   d.TableNumber,
		FloorNumber:   d.FloorNumber,
		OrderDate:     d.OrderDate,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		SyncedToPOS:   d.SyncedToPOS,
		SyncedAt:      d.SyncedAt,
		POSOrderID:    d.POSOrderID,
	}
}

func NewDigitalMenuOrders(docs []digitalmenu.Order) []DigitalMenuOrder {
	out := make([]DigitalMenuOrder, 0, len(docs))
	for _, d := range docs {
		out = append(out, NewDigitalMenuOrder(d))
	}
	return out
}
