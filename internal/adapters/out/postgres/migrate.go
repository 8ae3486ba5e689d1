package postgres

import (
	"context"
	"fmt"

	"restaurant/internal/adapters/out/postgres/invoicerepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/reservationrepo"
	"restaurant/internal/adapters/out/postgres/settingrepo"
	"restaurant/internal/adapters/out/postgres/tablerepo"

	"gorm.io/gorm"
)

// Uniqueness rules GORM tags cannot express. Table numbers are unique per
// floor; tables without a floor share one bucket.
var expressionIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_tables_floor_number
		ON tables (COALESCE(floor_id, '00000000-0000-0000-0000-000000000000'::uuid), lower(table_number))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_floors_name ON floors (lower(name))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_menu_items_name ON menu_items (lower(name))`,
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	err := db.AutoMigrate(
		&tablerepo.FloorDTO{},
		&tablerepo.TableDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&invoicerepo.InvoiceDTO{},
		&reservationrepo.ReservationDTO{},
		&menurepo.MenuItemDTO{},
		&settingrepo.SettingDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for _, stmt := range expressionIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
