// Package tablerepo persists the floor plan: floors and their tables.
package tablerepo

import (
	"restaurant/internal/adapters/out/postgres/dbconv"
	"restaurant/internal/core/domain/model/table"

	"github.com/google/uuid"
)

type TableDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FloorID        *uuid.UUID `gorm:"type:uuid;index"`
	TableNumber    string     `gorm:"size:32;not null"`
	Seats          int        `gorm:"not null"`
	Status         string     `gorm:"size:16;not null"`
	CurrentOrderID *uuid.UUID `gorm:"type:uuid"`
}

func (TableDTO) TableName() string {
	return "tables"
}

type FloorDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:64;not null"`
	DisplayOrder int       `gorm:"not null;default:0"`
}

func (FloorDTO) TableName() string {
	return "floors"
}

func tableFromDomain(t *table.Table) TableDTO {
	return TableDTO{
		ID:             t.ID().Bytes(),
		FloorID:        dbconv.UUIDPtr(t.FloorID()),
		TableNumber:    t.Number(),
		Seats:          t.Seats(),
		Status:         t.Status().String(),
		CurrentOrderID: dbconv.UUIDPtr(t.CurrentOrderID()),
	}
}

func tableToDomain(dto TableDTO) (*table.Table, error) {
	id, err := dbconv.KernelUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	floorID, err := dbconv.KernelUUIDPtr(dto.FloorID)
	if err != nil {
		return nil, err
	}
	orderID, err := dbconv.KernelUUIDPtr(dto.CurrentOrderID)
	if err != nil {
		return nil, err
	}
	status, err := table.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return table.RestoreTable(id, floorID, dto.TableNumber, dto.Seats, status, orderID), nil
}

func floorFromDomain(f *table.Floor) FloorDTO {
	return FloorDTO{ID: f.ID().Bytes(), Name: f.Name(), DisplayOrder: f.DisplayOrder()}
}

func floorToDomain(dto FloorDTO) (*table.Floor, error) {
	id, err := dbconv.KernelUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	return table.RestoreFloor(id, dto.Name, dto.DisplayOrder), nil
}
