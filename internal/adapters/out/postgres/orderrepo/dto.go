// Package orderrepo persists the Order aggregate. An order is one row in
// orders plus one row per line in order_items.
package orderrepo

import (
	"time"

	"restaurant/internal/adapters/out/postgres/dbconv"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderType       string          `gorm:"size:16;not null"`
	Source          string          `gorm:"size:16;not null;default:pos"`
	ExternalRef     *string         `gorm:"size:64;uniqueIndex"`
	TableID         *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName    string          `gorm:"size:128"`
	CustomerPhone   string          `gorm:"size:32"`
	CustomerAddress string          `gorm:"size:256"`
	Status          string          `gorm:"size:16;not null;index"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMode     string          `gorm:"size:32"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	BilledAt        *time.Time
	PaidAt          *time.Time
	CompletedAt     *time.Time
	Items           []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position   int             `gorm:"not null"`
	MenuItemID *uuid.UUID      `gorm:"type:uuid"`
	Name       string          `gorm:"size:128;not null"`
	Quantity   int             `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Notes      string          `gorm:"size:512"`
	IsVeg      bool
	Status     string `gorm:"size:16;not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var ref *string
	if o.ExternalRef() != "" {
		r := o.ExternalRef()
		ref = &r
	}
	c := o.Customer()
	dto := OrderDTO{
		ID:              o.ID().Bytes(),
		OrderType:       o.Type().String(),
		Source:          o.Source().String(),
		ExternalRef:     ref,
		TableID:         dbconv.UUIDPtr(o.TableID()),
		CustomerName:    c.Name,
		CustomerPhone:   c.Phone,
		CustomerAddress: c.Address,
		Status:          o.Status().String(),
		Total:           dbconv.Decimal(o.Total()),
		PaymentMode:     o.PaymentMode(),
		CreatedAt:       o.CreatedAt(),
		BilledAt:        o.BilledAt(),
		PaidAt:          o.PaidAt(),
		CompletedAt:     o.CompletedAt(),
	}
	for pos, item := range o.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			ID:         item.ID().Bytes(),
			OrderID:    dto.ID,
			Position:   pos,
			MenuItemID: dbconv.UUIDPtr(item.MenuItemID()),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			Price:      dbconv.Decimal(item.Price()),
			Notes:      item.Notes(),
			IsVeg:      item.IsVeg(),
			Status:     item.Status().String(),
		})
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := dbconv.KernelUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	tableID, err := dbconv.KernelUUIDPtr(dto.TableID)
	if err != nil {
		return nil, err
	}
	orderType, err := order.ParseType(dto.OrderType)
	if err != nil {
		return nil, err
	}
	source, err := order.ParseSource(dto.Source)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, i := range dto.Items {
		item, itemErr := itemToDomain(i)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var ref string
	if dto.ExternalRef != nil {
		ref = *dto.ExternalRef
	}
	return order.RestoreOrder(order.Snapshot{
		ID:          id,
		Type:        orderType,
		Source:      source,
		ExternalRef: ref,
		TableID:     tableID,
		Customer: order.Customer{
			Name:    dto.CustomerName,
			Phone:   dto.CustomerPhone,
			Address: dto.CustomerAddress,
		},
		Items:       items,
		Total:       dbconv.Money(dto.Total),
		Status:      status,
		PaymentMode: dto.PaymentMode,
		CreatedAt:   dto.CreatedAt,
		BilledAt:    dto.BilledAt,
		PaidAt:      dto.PaidAt,
		CompletedAt: dto.CompletedAt,
	}), nil
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := dbconv.KernelUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	menuItemID, err := dbconv.KernelUUIDPtr(dto.MenuItemID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseItemStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(
		id,
		menuItemID,
		dto.Name,
		dto.Quantity,
		dbconv.Money(dto.Price),
		dto.Notes,
		dto.IsVeg,
		status,
	), nil
}
