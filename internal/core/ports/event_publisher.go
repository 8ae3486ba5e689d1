package ports

import (
	"context"
	"time"
)

// EventType names a change notification.
type EventType string

const (
	EventOrderCreated           EventType = "order_created"
	EventOrderUpdated           EventType = "order_updated"
	EventOrderItemAdded         EventType = "order_item_added"
	EventOrderItemUpdated       EventType = "order_item_updated"
	EventOrderItemDeleted       EventType = "order_item_deleted"
	EventOrderPaid              EventType = "order_paid"
	EventOrderCompleted         EventType = "order_completed"
	EventTableCreated           EventType = "table_created"
	EventTableUpdated           EventType = "table_updated"
	EventTableDeleted           EventType = "table_deleted"
	EventFloorCreated           EventType = "floor_created"
	EventFloorDeleted           EventType = "floor_deleted"
	EventInvoiceCreated         EventType = "invoice_created"
	EventInvoiceUpdated         EventType = "invoice_updated"
	EventReservationCreated     EventType = "reservation_created"
	EventReservationUpdated     EventType = "reservation_updated"
	EventReservationDeleted     EventType = "reservation_deleted"
	EventDigitalMenuOrderSynced EventType = "digital_menu_order_synced"
)

// Event is a one-way change notification. Data is a JSON-serialisable view
// of the changed entity.
type Event struct {
	Type       EventType `json:"type"`
	Data       any       `json:"data"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher delivers events to whoever listens. Publish must not block
// on slow or absent subscribers and never fails the caller; delivery
// problems are the publisher's to log.
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}
