package queries

import (
	"context"

	"restaurant/internal/core/application/views"
	"restaurant/internal/core/ports"
)

// FloorPlanView lists floors by display order and tables by floor, then number.
type FloorPlanView struct {
	Floors []views.Floor `json:"floors"`
	Tables []views.Table `json:"tables"`
}

type GetFloorPlanQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetFloorPlanQueryHandler(uowFactory ports.UnitOfWorkFactory) GetFloorPlanQueryHandler {
	return GetFloorPlanQueryHandler{uowFactory: uowFactory}
}

func (h GetFloorPlanQueryHandler) Handle(ctx context.Context, query GetFloorPlanQuery) (FloorPlanView, error) {
	if err := query.Validate(); err != nil {
		return FloorPlanView{}, err
	}

	uow := h.uowFactory.Create()
	floors, err := uow.FloorRepository().GetAll(ctx)
	if err != nil {
		return FloorPlanView{}, err
	}
	tables, err := uow.TableRepository().GetAll(ctx)
	if err != nil {
		return FloorPlanView{}, err
	}
	return FloorPlanView{Floors: views.NewFloors(floors), Tables: views.NewTables(tables)}, nil
}
