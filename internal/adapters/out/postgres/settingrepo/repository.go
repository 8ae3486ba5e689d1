// Package settingrepo stores runtime key/value settings.
package settingrepo

import (
	"context"

	"restaurant/internal/adapters/out/postgres/dbconv"
	"restaurant/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.SettingRepository = &GormSettingRepository{}

type SettingDTO struct {
	Key   string `gorm:"size:128;primaryKey"`
	Value string `gorm:"type:text;not null"`
}

func (SettingDTO) TableName() string {
	return "settings"
}

type GormSettingRepository struct {
	db *gorm.DB
}

func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

func (r *GormSettingRepository) Get(ctx context.Context, key string) (string, error) {
	var dto SettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		return "", dbconv.NotFound(err, "key", key)
	}
	return dto.Value, nil
}

func (r *GormSettingRepository) Set(ctx context.Context, key, value string) error {
	dto := SettingDTO{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&dto).Error
}
