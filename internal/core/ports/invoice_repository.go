package ports

import (
	"context"

	"restaurant/internal/core/domain/model/invoice"
	"restaurant/internal/core/domain/model/kernel"
)

// InvoiceRepository persists invoices. Numbers are unique.
type InvoiceRepository interface {
	Add(ctx context.Context, inv *invoice.Invoice) error
	Update(ctx context.Context, inv *invoice.Invoice) error
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error)

	// GetAll returns invoices newest first.
	GetAll(ctx context.Context) ([]*invoice.Invoice, error)

	// Count returns the number of invoices, the base of the next invoice number.
	Count(ctx context.Context) (int64, error)
}
