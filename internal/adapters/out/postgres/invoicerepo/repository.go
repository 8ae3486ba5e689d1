package invoicerepo

import (
	"context"

	"restaurant/internal/adapters/out/postgres/dbconv"
	"restaurant/internal/core/domain/model/invoice"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.InvoiceRepository = &GormInvoiceRepository{}

type GormInvoiceRepository struct {
	db *gorm.DB
}

func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Add inserts the invoice. A taken number is a ConflictError; this is what
// stops two racing checkouts from sharing a number.
func (r *GormInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	dto := fromDomain(inv)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dbconv.Conflict(err, "invoice", inv.Number()+" already exists")
	}
	return nil
}

func (r *GormInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	dto := fromDomain(inv)
	result := r.db.WithContext(ctx).Model(&InvoiceDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("CreatedAt").
		Updates(&dto)
	if result.Error != nil {
		return dbconv.Conflict(result.Error, "invoice", inv.Number()+" already exists")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoiceId", inv.ID())
	}
	return nil
}

func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbconv.NotFound(err, "invoiceId", id)
	}
	return toDomain(dto)
}

func (r *GormInvoiceRepository) GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "invoice_number = ?", number).Error; err != nil {
		return nil, dbconv.NotFound(err, "invoiceNumber", number)
	}
	return toDomain(dto)
}

func (r *GormInvoiceRepository) GetAll(ctx context.Context) ([]*invoice.Invoice, error) {
	var dtos []InvoiceDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC, invoice_number DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}
	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		inv, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (r *GormInvoiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&InvoiceDTO{}).Count(&count).Error
	return count, err
}
