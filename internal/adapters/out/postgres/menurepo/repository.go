// Package menurepo persists the menu catalogue used to resolve imported lines.
package menurepo

import (
	"context"

	"restaurant/internal/adapters/out/postgres/dbconv"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var _ ports.MenuItemRepository = &GormMenuItemRepository{}

type MenuItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"size:128;not null"`
	Category  string          `gorm:"size:64;not null;index"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsVeg     bool            `gorm:"not null"`
	Available bool            `gorm:"not null"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

type GormMenuItemRepository struct {
	db *gorm.DB
}

func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

func (r *GormMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	dto := MenuItemDTO{
		ID:        item.ID().Bytes(),
		Name:      item.Name(),
		Category:  item.Category(),
		Price:     dbconv.Decimal(item.Price()),
		IsVeg:     item.IsVeg(),
		Available: item.Available(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dbconv.Conflict(err, "menuItem", item.Name()+" already exists")
	}
	return nil
}

func (r *GormMenuItemRepository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("category ASC, name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}
	items := make([]*menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *GormMenuItemRepository) GetByName(ctx context.Context, name string) (*menu.MenuItem, error) {
	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "lower(name) = lower(?)", name).Error; err != nil {
		return nil, dbconv.NotFound(err, "menuItemName", name)
	}
	return toDomain(dto)
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := dbconv.KernelUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	return menu.RestoreMenuItem(id, dto.Name, dto.Category, dbconv.Money(dto.Price), dto.IsVeg, dto.Available), nil
}
