package mongofeed

import (
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/digitalmenu"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// orderDocument mirrors one entry of the digital menu's order collection.
// The digital menu owns the schema; only the sync fields are written here.
type orderDocument struct {
	ID            any            `bson:"_id"`
	CustomerID    string         `bson:"customerId,omitempty"`
	CustomerName  string         `bson:"customerName"`
	CustomerPhone string         `bson:"customerPhone"`
	Items         []itemDocument `bson:"items"`
	Subtotal      float64        `bson:"subtotal"`
	Tax           float64        `bson:"tax"`
	Total         float64        `bson:"total"`
	Status        string         `bson:"status"`
	PaymentStatus string         `bson:"paymentStatus,omitempty"`
	PaymentMethod string         `bson:"paymentMethod,omitempty"`
	TableNumber   string         `bson:"tableNumber,omitempty"`
	FloorNumber   string         `bson:"floorNumber,omitempty"`
	OrderDate     time.Time      `bson:"orderDate"`
	CreatedAt     time.Time      `bson:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt"`
	SyncedToPOS   bool           `bson:"syncedToPOS,omitempty"`
	SyncedAt      *time.Time     `bson:"syncedAt,omitempty"`
	POSOrderID    string         `bson:"posOrderId,omitempty"`
}

type itemDocument struct {
	MenuItemID   string  `bson:"menuItemId"`
	MenuItemName string  `bson:"menuItemName"`
	Quantity     int     `bson:"quantity"`
	Price        float64 `bson:"price"`
	Total        float64 `bson:"total"`
	SpiceLevel   string  `bson:"spiceLevel,omitempty"`
	Notes        string  `bson:"notes,omitempty"`
}

func (d orderDocument) toDomain() (digitalmenu.Order, error) {
	id, err := documentID(d.ID)
	if err != nil {
		return digitalmenu.Order{}, err
	}
	items := make([]digitalmenu.Item, 0, len(d.Items))
	for _, i := range d.Items {
		items = append(items, digitalmenu.Item{
			MenuItemID:   i.MenuItemID,
			MenuItemName: i.MenuItemName,
			Quantity:     i.Quantity,
			Price:        i.Price,
			Total:        i.Total,
			SpiceLevel:   i.SpiceLevel,
			Notes:        i.Notes,
		})
	}
	return digitalmenu.Order{
		ID:            id,
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Items:         items,
		Subtotal:      d.Subtotal,
		Tax:           d.Tax,
		Total:         d.Total,
		Status:        digitalmenu.Status(d.Status),
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
	}, nil
}

// documentID renders _id as the string the POS stores in externalRef.
// The digital menu writes ObjectIDs; string ids are accepted as they are.
func documentID(raw any) (string, error) {
	switch id := raw.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return "", fmt.Errorf("unsupported _id type %T", raw)
	}
}

// idFilterValue is the inverse of documentID.
func idFilterValue(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}
