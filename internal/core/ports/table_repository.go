package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
)

// TableRepository persists tables.
type TableRepository interface {
	Add(ctx context.Context, t *table.Table) error
	Update(ctx context.Context, t *table.Table) error
	Get(ctx context.Context, id kernel.UUID) (*table.Table, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAll returns every table ordered by floor display order, then number.
	GetAll(ctx context.Context) ([]*table.Table, error)

	// GetByNumber returns every table carrying the number, across floors,
	// in the GetAll order.
	GetByNumber(ctx context.Context, number string) ([]*table.Table, error)

	// CountByFloor returns how many tables are attached to the floor.
	CountByFloor(ctx context.Context, floorID kernel.UUID) (int64, error)
}

// FloorRepository persists floors.
type FloorRepository interface {
	Add(ctx context.Context, f *table.Floor) error
	Get(ctx context.Context, id kernel.UUID) (*table.Floor, error)

	// GetAll returns floors in display order.
	GetAll(ctx context.Context) ([]*table.Floor, error)

	// GetByName matches case-insensitively; ObjectNotFoundError when absent.
	GetByName(ctx context.Context, name string) (*table.Floor, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
