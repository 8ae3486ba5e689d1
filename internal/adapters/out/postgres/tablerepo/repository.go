package tablerepo

import (
	"context"
	"strings"

	"restaurant/internal/adapters/out/postgres/dbconv"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

var (
	_ ports.TableRepository = &GormTableRepository{}
	_ ports.FloorRepository = &GormFloorRepository{}
)

// floorPlanOrder sorts tables by floor display order (tables without a floor
// last), then numerically when the numbers have the same length.
const floorPlanOrder = "floors.display_order ASC NULLS LAST, length(tables.table_number) ASC, tables.table_number ASC"

type GormTableRepository struct {
	db *gorm.DB
}

func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) Add(ctx context.Context, t *table.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	dto := tableFromDomain(t)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dbconv.Conflict(err, "table", t.Number()+" already exists on this floor")
	}
	return nil
}

func (r *GormTableRepository) Update(ctx context.Context, t *table.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	dto := tableFromDomain(t)
	result := r.db.WithContext(ctx).Model(&TableDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return dbconv.Conflict(result.Error, "table", t.Number()+" already exists on this floor")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tableId", t.ID())
	}
	return nil
}

func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.Table, error) {
	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbconv.NotFound(err, "tableId", id)
	}
	return tableToDomain(dto)
}

func (r *GormTableRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&TableDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tableId", id)
	}
	return nil
}

func (r *GormTableRepository) GetAll(ctx context.Context) ([]*table.Table, error) {
	return r.find(r.floorPlan(ctx))
}

func (r *GormTableRepository) GetByNumber(ctx context.Context, number string) ([]*table.Table, error) {
	query := r.floorPlan(ctx).Where("lower(tables.table_number) = lower(?)", strings.TrimSpace(number))
	return r.find(query)
}

func (r *GormTableRepository) CountByFloor(ctx context.Context, floorID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TableDTO{}).Where("floor_id = ?", floorID.Bytes()).Count(&count).Error
	return count, err
}

func (r *GormTableRepository) floorPlan(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&TableDTO{}).
		Select("tables.*").
		Joins("LEFT JOIN floors ON floors.id = tables.floor_id").
		Order(floorPlanOrder)
}

func (r *GormTableRepository) find(query *gorm.DB) ([]*table.Table, error) {
	var dtos []TableDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}
	tables := make([]*table.Table, 0, len(dtos))
	for _, dto := range dtos {
		t, err := tableToDomain(dto)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

type GormFloorRepository struct {
	db *gorm.DB
}

func NewGormFloorRepository(db *gorm.DB) *GormFloorRepository {
	return &GormFloorRepository{db: db}
}

func (r *GormFloorRepository) Add(ctx context.Context, f *table.Floor) error {
	if err := f.Validate(); err != nil {
		return err
	}
	dto := floorFromDomain(f)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dbconv.Conflict(err, "floor", f.Name()+" already exists")
	}
	return nil
}

func (r *GormFloorRepository) Get(ctx context.Context, id kernel.UUID) (*table.Floor, error) {
	var dto FloorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbconv.NotFound(err, "floorId", id)
	}
	return floorToDomain(dto)
}

func (r *GormFloorRepository) GetAll(ctx context.Context) ([]*table.Floor, error) {
	var dtos []FloorDTO
	if err := r.db.WithContext(ctx).Order("display_order ASC, name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}
	floors := make([]*table.Floor, 0, len(dtos))
	for _, dto := range dtos {
		f, err := floorToDomain(dto)
		if err != nil {
			return nil, err
		}
		floors = append(floors, f)
	}
	return floors, nil
}

func (r *GormFloorRepository) GetByName(ctx context.Context, name string) (*table.Floor, error) {
	var dto FloorDTO
	err := r.db.WithContext(ctx).First(&dto, "lower(name) = lower(?)", strings.TrimSpace(name)).Error
	if err != nil {
		return nil, dbconv.NotFound(err, "floorName", name)
	}
	return floorToDomain(dto)
}

func (r *GormFloorRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&FloorDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("floorId", id)
	}
	return nil
}
