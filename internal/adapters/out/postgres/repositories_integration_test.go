package postgres_test

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/billing"
	"restaurant/internal/core/domain/model/invoice"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
)

func (suite *UnitOfWorkIntegrationTestSuite) TestTables_FloorPlanOrder() {
	ctx := context.Background()
	uow := suite.factory.Create()

	terrace, err := table.NewFloor(kernel.NewUUID(), "Terrace", 2)
	suite.Require().NoError(err)
	ground, err := table.NewFloor(kernel.NewUUID(), "Ground Floor", 1)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.FloorRepository().Add(ctx, terrace))
	suite.Require().NoError(uow.FloorRepository().Add(ctx, ground))

	groundID, terraceID := ground.ID(), terrace.ID()
	for _, t := range []*table.Table{
		suite.table(&terraceID, "T1"),
		suite.table(&groundID, "T10"),
		suite.table(nil, "B1"),
		suite.table(&groundID, "T2"),
	} {
		suite.Require().NoError(uow.TableRepository().Add(ctx, t))
	}

	tables, err := uow.TableRepository().GetAll(ctx)
	suite.Require().NoError(err)
	numbers := make([]string, 0, len(tables))
	for _, t := range tables {
		numbers = append(numbers, t.Number())
	}
	suite.Equal([]string{"T2", "T10", "T1", "B1"}, numbers)

	matches, err := uow.TableRepository().GetByNumber(ctx, "t1")
	suite.Require().NoError(err)
	suite.Require().Len(matches, 1)
	suite.True(matches[0].FloorID().IsEqual(terraceID))

	count, err := uow.TableRepository().CountByFloor(ctx, groundID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)

	floors, err := uow.FloorRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(floors, 2)
	suite.Equal("Ground Floor", floors[0].Name())

	byName, err := uow.FloorRepository().GetByName(ctx, "ground floor")
	suite.Require().NoError(err)
	suite.True(byName.ID().IsEqual(groundID))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFloors_Delete() {
	ctx := context.Background()
	uow := suite.factory.Create()
	floor, err := table.NewFloor(kernel.NewUUID(), "Rooftop", 3)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.FloorRepository().Add(ctx, floor))

	suite.Require().NoError(uow.FloorRepository().Delete(ctx, floor.ID()))

	suite.Require().ErrorIs(uow.FloorRepository().Delete(ctx, floor.ID()), errs.ErrObjectNotFound)
	_, err = uow.FloorRepository().Get(ctx, floor.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTables_Delete() {
	ctx := context.Background()
	uow := suite.factory.Create()
	t := suite.table(nil, "P9")
	suite.Require().NoError(uow.TableRepository().Add(ctx, t))

	suite.Require().NoError(uow.TableRepository().Delete(ctx, t.ID()))

	suite.Require().ErrorIs(uow.TableRepository().Delete(ctx, t.ID()), errs.ErrObjectNotFound)
	_, err := uow.TableRepository().Get(ctx, t.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInvoices_NumbersAndSnapshot() {
	ctx := context.Background()
	uow := suite.factory.Create()
	issuedAt := time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC)
	lines := []billing.Line{
		{Name: "Paneer Tikka", Quantity: 2, Price: kernel.MustMoney("100.00"), IsVeg: true},
		{Name: "Dal Makhani", Quantity: 1, Price: kernel.MustMoney("50.00"), IsVeg: true, Notes: "extra butter"},
	}
	splits := []billing.SplitPayment{
		{Person: "Asha", Amount: kernel.MustMoney("131.25"), Mode: "upi"},
		{Person: "Ravi", Amount: kernel.MustMoney("131.25"), Mode: "cash"},
	}

	count, err := uow.InvoiceRepository().Count(ctx)
	suite.Require().NoError(err)
	inv, err := invoice.NewInvoice(kernel.NewUUID(), invoice.NextNumber(count), kernel.NewUUID(),
		invoice.Party{TableNumber: "T1", FloorName: "Ground Floor"}, lines, "split", splits, issuedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.InvoiceRepository().Add(ctx, inv))

	stored, err := uow.InvoiceRepository().GetByNumber(ctx, "INV-0001")
	suite.Require().NoError(err)
	suite.True(stored.ID().IsEqual(inv.ID()))
	suite.Equal("250.00", stored.Totals().Subtotal.String())
	suite.Equal("12.50", stored.Totals().Tax.String())
	suite.Equal("262.50", stored.Totals().Total.String())
	suite.Equal("Ground Floor", stored.Party().FloorName)
	suite.Require().Len(stored.Lines(), 2)
	suite.Equal("extra butter", stored.Lines()[1].Notes)
	suite.Require().Len(stored.Splits(), 2)
	suite.Equal("131.25", stored.Splits()[0].Amount.String())

	clash, err := invoice.NewInvoice(kernel.NewUUID(), "INV-0001", kernel.NewUUID(),
		invoice.Party{}, lines, "cash", nil, issuedAt)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(uow.InvoiceRepository().Add(ctx, clash), errs.ErrConflict)

	single := []billing.SplitPayment{{Person: "Asha", Amount: kernel.MustMoney("210.00"), Mode: "upi"}}
	suite.Require().NoError(stored.Regenerate(lines[:1], single, issuedAt.Add(time.Hour)))
	suite.Require().NoError(uow.InvoiceRepository().Update(ctx, stored))
	regenerated, err := uow.InvoiceRepository().Get(ctx, inv.ID())
	suite.Require().NoError(err)
	suite.Equal("210.00", regenerated.Totals().Total.String())
	suite.Len(regenerated.Splits(), 1)

	all, err := uow.InvoiceRepository().GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReservations_ByTable() {
	ctx := context.Background()
	uow := suite.factory.Create()
	tbl := suite.addTable("T4")

	late, err := reservation.NewReservation(kernel.NewUUID(), tbl.ID(),
		reservation.Guest{Name: "Meera", Phone: "98111", PartySize: 4}, "2026-03-14T21:00", "window seat")
	suite.Require().NoError(err)
	early, err := reservation.NewReservation(kernel.NewUUID(), tbl.ID(),
		reservation.Guest{Name: "Kabir", Phone: "98222", PartySize: 2}, "2026-03-14T19:00", "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ReservationRepository().Add(ctx, late))
	suite.Require().NoError(uow.ReservationRepository().Add(ctx, early))

	early.Cancel()
	suite.Require().NoError(uow.ReservationRepository().Update(ctx, early))

	byTable, err := uow.ReservationRepository().GetByTable(ctx, tbl.ID())
	suite.Require().NoError(err)
	suite.Require().Len(byTable, 2)
	suite.Equal("Kabir", byTable[0].Guest().Name)
	suite.False(byTable[0].IsActive())
	suite.Equal("window seat", byTable[1].Notes())

	suite.Require().NoError(uow.ReservationRepository().Delete(ctx, late.ID()))
	_, err = uow.ReservationRepository().Get(ctx, late.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(uow.ReservationRepository().Delete(ctx, late.ID()), errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMenuItems_GetByName() {
	ctx := context.Background()
	uow := suite.factory.Create()
	item, err := menu.NewMenuItem(kernel.NewUUID(), "Chicken Biryani", "Mains", kernel.MustMoney("280"), false)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MenuItemRepository().Add(ctx, item))

	found, err := uow.MenuItemRepository().GetByName(ctx, "chicken biryani")
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(item.ID()))
	suite.False(found.IsVeg())
	suite.Equal("280.00", found.Price().String())

	_, err = uow.MenuItemRepository().GetByName(ctx, "Mutton Biryani")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	dup, err := menu.NewMenuItem(kernel.NewUUID(), "CHICKEN BIRYANI", "Mains", kernel.MustMoney("1"), false)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(uow.MenuItemRepository().Add(ctx, dup), errs.ErrConflict)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSettings_Upsert() {
	ctx := context.Background()
	uow := suite.factory.Create()

	_, err := uow.SettingRepository().Get(ctx, "digital_menu_uri")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow.SettingRepository().Set(ctx, "digital_menu_uri", "mongodb://menu-a:27017"))
	suite.Require().NoError(uow.SettingRepository().Set(ctx, "digital_menu_uri", "mongodb://menu-b:27017"))

	value, err := uow.SettingRepository().Get(ctx, "digital_menu_uri")
	suite.Require().NoError(err)
	suite.Equal("mongodb://menu-b:27017", value)
}
