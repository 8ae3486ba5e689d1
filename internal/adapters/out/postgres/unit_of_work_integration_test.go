package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/pgtest"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real
// PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, db, err := pgtest.Start(ctx)
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
	// Running it twice must be harmless.
	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE order_items, orders, tables, floors, invoices, reservations, menu_items, settings CASCADE",
	).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.TableRepository())
	suite.NotNil(uow1.FloorRepository())
	suite.NotNil(uow1.InvoiceRepository())
	suite.NotNil(uow1.ReservationRepository())
	suite.NotNil(uow1.MenuItemRepository())
	suite.NotNil(uow1.SettingRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// Seating an order touches two repositories; both writes land together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	tbl := suite.addTable("T1")
	tableID := tbl.ID()
	o := suite.newOrder(&tableID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(tbl.Occupy(o.ID()))
	suite.Require().NoError(uow.TableRepository().Update(ctx, tbl))
	suite.Require().NoError(uow.Commit(ctx))

	reader := suite.factory.Create()
	stored, err := reader.TableRepository().Get(ctx, tbl.ID())
	suite.Require().NoError(err)
	suite.Equal(table.Occupied, stored.Status())
	suite.Require().NotNil(stored.CurrentOrderID())
	suite.True(stored.CurrentOrderID().IsEqual(o.ID()))

	storedOrder, err := reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(storedOrder.Items(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	tbl := suite.addTable("T1")
	tableID := tbl.ID()
	o := suite.newOrder(&tableID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(tbl.Occupy(o.ID()))
	suite.Require().NoError(uow.TableRepository().Update(ctx, tbl))
	suite.Require().NoError(uow.SettingRepository().Set(ctx, ports.SettingDigitalMenuURI, "mongodb://menu"))

	_, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err, "visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	stored, err := reader.TableRepository().Get(ctx, tbl.ID())
	suite.Require().NoError(err)
	suite.Equal(table.Free, stored.Status())

	_, err = reader.SettingRepository().Get(ctx, ports.SettingDigitalMenuURI)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	first := suite.newOrder(nil)
	second := suite.newOrder(nil)

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, first))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, second))

	_, err := uow1.OrderRepository().Get(ctx, second.ID())
	suite.Require().Error(err, "uow1 must not see uncommitted rows of uow2")
	_, err = uow2.OrderRepository().Get(ctx, first.ID())
	suite.Require().Error(err, "uow2 must not see uncommitted rows of uow1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	reader := suite.factory.Create()
	_, err = reader.OrderRepository().Get(ctx, first.ID())
	suite.Require().NoError(err)
	_, err = reader.OrderRepository().Get(ctx, second.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.SettingRepository().Set(ctx, ports.SettingDigitalMenuURI, "mongodb://a"))
	suite.Require().NoError(uow.SettingRepository().Set(ctx, ports.SettingDigitalMenuURI, "mongodb://b"))

	value, err := suite.factory.Create().SettingRepository().Get(ctx, ports.SettingDigitalMenuURI)
	suite.Require().NoError(err)
	suite.Equal("mongodb://b", value)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMigrate_TableNumbersAreUniquePerFloor() {
	ctx := context.Background()
	uow := suite.factory.Create()

	ground, err := table.NewFloor(kernel.NewUUID(), "Ground", 1)
	suite.Require().NoError(err)
	terrace, err := table.NewFloor(kernel.NewUUID(), "Terrace", 2)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.FloorRepository().Add(ctx, ground))
	suite.Require().NoError(uow.FloorRepository().Add(ctx, terrace))

	groundID, terraceID := ground.ID(), terrace.ID()
	suite.Require().NoError(uow.TableRepository().Add(ctx, suite.table(&groundID, "T1")))
	suite.Require().NoError(uow.TableRepository().Add(ctx, suite.table(&terraceID, "T1")))

	err = uow.TableRepository().Add(ctx, suite.table(&groundID, "t1"))
	suite.Require().ErrorIs(err, errs.ErrConflict)

	suite.Require().NoError(uow.TableRepository().Add(ctx, suite.table(nil, "T1")))
	err = uow.TableRepository().Add(ctx, suite.table(nil, "T1"))
	suite.Require().ErrorIs(err, errs.ErrConflict, "floorless tables share one namespace")

	dup, err := table.NewFloor(kernel.NewUUID(), "ground", 3)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(uow.FloorRepository().Add(ctx, dup), errs.ErrConflict)
}

func (suite *UnitOfWorkIntegrationTestSuite) table(floorID *kernel.UUID, number string) *table.Table {
	t, err := table.NewTable(kernel.NewUUID(), floorID, number, 4)
	suite.Require().NoError(err)
	return t
}

func (suite *UnitOfWorkIntegrationTestSuite) addTable(number string) *table.Table {
	t := suite.table(nil, number)
	suite.Require().NoError(suite.factory.Create().TableRepository().Add(context.Background(), t))
	return t
}

// newOrder builds a dine-in order on tableID, or a pickup order without one.
func (suite *UnitOfWorkIntegrationTestSuite) newOrder(tableID *kernel.UUID) *order.Order {
	createdAt := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	var (
		o   *order.Order
		err error
	)
	if tableID == nil {
		o, err = order.NewOrder(kernel.NewUUID(), order.Pickup, nil, order.Customer{Phone: "555"}, createdAt)
	} else {
		o, err = order.NewOrder(kernel.NewUUID(), order.DineIn, tableID, order.Customer{}, createdAt)
	}
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), nil, "Masala Chai", 2, kernel.MustMoney("30.00"), "", true)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(item))
	return o
}

func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
