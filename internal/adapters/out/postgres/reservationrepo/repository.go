// Package reservationrepo persists table reservations.
package reservationrepo

import (
	"context"

	"restaurant/internal/adapters/out/postgres/dbconv"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ ports.ReservationRepository = &GormReservationRepository{}

type ReservationDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName   string    `gorm:"size:128;not null"`
	CustomerPhone  string    `gorm:"size:32;not null"`
	NumberOfPeople int       `gorm:"not null"`
	TimeSlot       string    `gorm:"size:32;not null"`
	Notes          string    `gorm:"size:512"`
	Status         string    `gorm:"size:16;not null"`
}

func (ReservationDTO) TableName() string {
	return "reservations"
}

func fromDomain(r *reservation.Reservation) ReservationDTO {
	g := r.Guest()
	return ReservationDTO{
		ID:             r.ID().Bytes(),
		TableID:        r.TableID().Bytes(),
		CustomerName:   g.Name,
		CustomerPhone:  g.Phone,
		NumberOfPeople: g.PartySize,
		TimeSlot:       r.TimeSlot(),
		Notes:          r.Notes(),
		Status:         string(r.Status()),
	}
}

func toDomain(dto ReservationDTO) (*reservation.Reservation, error) {
	id, err := dbconv.KernelUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	tableID, err := dbconv.KernelUUID(dto.TableID)
	if err != nil {
		return nil, err
	}
	status, err := reservation.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	guest := reservation.Guest{Name: dto.CustomerName, Phone: dto.CustomerPhone, PartySize: dto.NumberOfPeople}
	return reservation.RestoreReservation(id, tableID, guest, dto.TimeSlot, dto.Notes, status), nil
}

type GormReservationRepository struct {
	db *gorm.DB
}

func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

func (r *GormReservationRepository) Add(ctx context.Context, res *reservation.Reservation) error {
	if err := res.Validate(); err != nil {
		return err
	}
	dto := fromDomain(res)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dbconv.Conflict(err, "reservation", res.ID().String()+" already exists")
	}
	return nil
}

func (r *GormReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	if err := res.Validate(); err != nil {
		return err
	}
	dto := fromDomain(res)
	result := r.db.WithContext(ctx).Model(&ReservationDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reservationId", res.ID())
	}
	return nil
}

func (r *GormReservationRepository) Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error) {
	var dto ReservationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dbconv.NotFound(err, "reservationId", id)
	}
	return toDomain(dto)
}

func (r *GormReservationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ReservationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reservationId", id)
	}
	return nil
}

func (r *GormReservationRepository) GetAll(ctx context.Context) ([]*reservation.Reservation, error) {
	return r.find(r.db.WithContext(ctx))
}

func (r *GormReservationRepository) GetByTable(ctx context.Context, tableID kernel.UUID) ([]*reservation.Reservation, error) {
	return r.find(r.db.WithContext(ctx).Where("table_id = ?", tableID.Bytes()))
}

func (r *GormReservationRepository) find(query *gorm.DB) ([]*reservation.Reservation, error) {
	var dtos []ReservationDTO
	if err := query.Order("time_slot ASC, id ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}
	out := make([]*reservation.Reservation, 0, len(dtos))
	for _, dto := range dtos {
		res, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}
