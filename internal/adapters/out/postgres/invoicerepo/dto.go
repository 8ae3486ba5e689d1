// Package invoicerepo persists invoices. Lines and split payments are frozen
// copies and are stored as JSON documents next to the totals.
package invoicerepo

import (
	"time"

	"restaurant/internal/adapters/out/postgres/dbconv"
	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/invoice"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceDTO struct {
	ID            uuid.UUID              `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string                 `gorm:"size:32;not null;uniqueIndex"`
	OrderID       uuid.UUID              `gorm:"type:uuid;not null;index"`
	TableNumber   string                 `gorm:"size:32"`
	FloorName     string                 `gorm:"size:64"`
	CustomerName  string                 `gorm:"size:128"`
	CustomerPhone string                 `gorm:"size:32"`
	Subtotal      decimal.Decimal        `gorm:"type:numeric(12,2);not null"`
	Tax           decimal.Decimal        `gorm:"type:numeric(12,2);not null"`
	Discount      decimal.Decimal        `gorm:"type:numeric(12,2);not null"`
	Total         decimal.Decimal        `gorm:"type:numeric(12,2);not null"`
	PaymentMode   string                 `gorm:"size:32;not null"`
	SplitPayments []billing.SplitPayment `gorm:"type:jsonb;serializer:json"`
	Status        string                 `gorm:"size:16;not null"`
	Items         []billing.Line         `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt     time.Time              `gorm:"not null;index"`
	UpdatedAt     time.Time              `gorm:"not null"`
}

func (InvoiceDTO) TableName() string {
	return "invoices"
}

func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	party := inv.Party()
	totals := inv.Totals()
	return InvoiceDTO{
		ID:            inv.ID().Bytes(),
		InvoiceNumber: inv.Number(),
		OrderID:       inv.OrderID().Bytes(),
		TableNumber:   party.TableNumber,
		FloorName:     party.FloorName,
		CustomerName:  party.CustomerName,
		CustomerPhone: party.CustomerPhone,
		Subtotal:      dbconv.Decimal(totals.Subtotal),
		Tax:           dbconv.Decimal(totals.Tax),
		Discount:      dbconv.Decimal(totals.Discount),
		Total:         dbconv.Decimal(totals.Total),
		PaymentMode:   inv.PaymentMode(),
		SplitPayments: inv.Splits(),
		Status:        inv.Status(),
		Items:         inv.Lines(),
		CreatedAt:     inv.CreatedAt(),
		UpdatedAt:     inv.UpdatedAt(),
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := dbconv.KernelUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := dbconv.KernelUUID(dto.OrderID)
	if err != nil {
		return nil, err
	}
	return invoice.RestoreInvoice(invoice.Snapshot{
		ID:      id,
		Number:  dto.InvoiceNumber,
		OrderID: orderID,
		Party: invoice.Party{
			TableNumber:   dto.TableNumber,
			FloorName:     dto.FloorName,
			CustomerName:  dto.CustomerName,
			CustomerPhone: dto.CustomerPhone,
		},
		Lines: dto.Items,
		Totals: billing.Totals{
			Subtotal: dbconv.Money(dto.Subtotal),
			Tax:      dbconv.Money(dto.Tax),
			Discount: dbconv.Money(dto.Discount),
			Total:    dbconv.Money(dto.Total),
		},
		PaymentMode: dto.PaymentMode,
		Splits:      dto.SplitPayments,
		Status:      dto.Status,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}), nil
}
