package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/pgtest"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

var createdAt = time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

// OrderRepositoryIntegrationTestSuite checks order persistence against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	o := suite.createOrder(createdAt, "Paneer Tikka", "Garlic Naan")

	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.ItemDTO{}, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_Conflict() {
	ctx := context.Background()
	o := suite.createOrder(createdAt, "Paneer Tikka")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	err := suite.repository.Add(ctx, o)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Rejected() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().Error(err)
	suite.assertCount(&orderrepo.OrderDTO{}, 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	tableID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), order.DineIn, &tableID, order.Customer{Name: "Asha", Phone: "98200"}, createdAt)
	suite.Require().NoError(err)
	menuItemID := kernel.NewUUID()
	first, err := order.NewItem(kernel.NewUUID(), &menuItemID, "Dal Makhani", 2, kernel.MustMoney("180.50"), "less spicy", true)
	suite.Require().NoError(err)
	second, err := order.NewItem(kernel.NewUUID(), nil, "Chicken 65", 1, kernel.MustMoney("240"), "", false)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(first))
	suite.Require().NoError(o.AddItem(second))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(stored.ID().IsEqual(o.ID()))
	suite.Equal(order.DineIn, stored.Type())
	suite.Equal(order.Saved, stored.Status())
	suite.Equal("Asha", stored.Customer().Name)
	suite.Require().NotNil(stored.TableID())
	suite.True(stored.TableID().IsEqual(tableID))
	suite.Equal("601.00", stored.Total().String())
	suite.True(createdAt.Equal(stored.CreatedAt()))

	suite.Require().Len(stored.Items(), 2)
	suite.Equal("Dal Makhani", stored.Items()[0].Name(), "items keep their position")
	suite.Equal("less spicy", stored.Items()[0].Notes())
	suite.Require().NotNil(stored.Items()[0].MenuItemID())
	suite.True(stored.Items()[0].MenuItemID().IsEqual(menuItemID))
	suite.False(stored.Items()[1].IsVeg())
	suite.Nil(stored.Items()[1].MenuItemID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	stored, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(stored)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReconcilesItems() {
	ctx := context.Background()
	o := suite.createOrder(createdAt, "Idli", "Vada")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	idli, vada := o.Items()[0], o.Items()[1]
	suite.Require().NoError(o.RemoveItem(vada.ID()))
	suite.Require().NoError(o.UpdateItemStatus(idli.ID(), order.ItemPreparing))
	dosa, err := order.NewItem(kernel.NewUUID(), nil, "Masala Dosa", 1, kernel.MustMoney("90"), "", true)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(dosa))
	suite.Require().NoError(o.SendToKitchen())

	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.SentToKitchen, stored.Status())
	suite.Require().Len(stored.Items(), 2)
	suite.Equal("Idli", stored.Items()[0].Name())
	suite.Equal(order.ItemPreparing, stored.Items()[0].Status())
	suite.Equal("Masala Dosa", stored.Items()[1].Name())
	suite.Equal(o.Total().String(), stored.Total().String())
	suite.assertCount(&orderrepo.ItemDTO{}, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PaymentTimestamps() {
	ctx := context.Background()
	o := suite.createOrder(createdAt, "Kulfi")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	paidAt := createdAt.Add(45 * time.Minute)
	suite.Require().NoError(o.Checkout("upi", paidAt))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Paid, stored.Status())
	suite.Equal("upi", stored.PaymentMode())
	suite.Require().NotNil(stored.PaidAt())
	suite.True(paidAt.Equal(*stored.PaidAt()))
	suite.True(createdAt.Equal(stored.CreatedAt()), "created_at is never rewritten")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	o := suite.createOrder(createdAt, "Lassi")

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByItemID() {
	ctx := context.Background()
	o := suite.createOrder(createdAt, "Samosa", "Chai")
	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.repository.GetByItemID(ctx, o.Items()[1].ID())
	suite.Require().NoError(err)
	suite.True(stored.ID().IsEqual(o.ID()))

	_, err = suite.repository.GetByItemID(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByExternalRef() {
	ctx := context.Background()
	item, err := order.NewItem(kernel.NewUUID(), nil, "Pav Bhaji", 1, kernel.MustMoney("120"), "", true)
	suite.Require().NoError(err)
	imported, err := order.NewImportedOrder(kernel.NewUUID(), "665f1c2e9b1d4a0012ab34cd", nil, order.Customer{Name: "Ravi"},
		[]*order.Item{item}, kernel.MustMoney("126.00"), createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, imported))

	stored, err := suite.repository.GetByExternalRef(ctx, "665f1c2e9b1d4a0012ab34cd")
	suite.Require().NoError(err)
	suite.Equal(order.SourceDigitalMenu, stored.Source())
	suite.Equal("126.00", stored.Total().String(), "imported orders keep the declared total")

	_, err = suite.repository.GetByExternalRef(ctx, "missing")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFind_FiltersAndOrdersByCreation() {
	ctx := context.Background()
	later := suite.createOrder(createdAt.Add(10*time.Minute), "Biryani")
	suite.Require().NoError(later.SendToKitchen())
	earlier := suite.createOrder(createdAt, "Pulao")
	suite.Require().NoError(earlier.Bill(createdAt.Add(5 * time.Minute)))
	saved := suite.createOrder(createdAt.Add(time.Minute), "Raita")
	paid := suite.createOrder(createdAt.Add(2*time.Minute), "Lassi")
	suite.Require().NoError(paid.Checkout("cash", createdAt.Add(3*time.Minute)))
	for _, o := range []*order.Order{later, earlier, saved, paid} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	active, err := suite.repository.Find(ctx, ports.ActiveOrders())
	suite.Require().NoError(err)
	suite.Require().Len(active, 2)
	suite.True(active[0].ID().IsEqual(earlier.ID()))
	suite.True(active[1].ID().IsEqual(later.ID()))

	settled, err := suite.repository.Find(ctx, ports.SettledOrders())
	suite.Require().NoError(err)
	suite.Require().Len(settled, 1)
	suite.Equal(order.Paid, settled[0].Status())

	all, err := suite.repository.Find(ctx, ports.OrderFilter{})
	suite.Require().NoError(err)
	suite.Len(all, 4)
}

// createOrder builds a pickup order with one line per name.
func (suite *OrderRepositoryIntegrationTestSuite) createOrder(at time.Time, names ...string) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), order.Pickup, nil, order.Customer{Phone: "555"}, at)
	suite.Require().NoError(err)
	for _, name := range names {
		item, err := order.NewItem(kernel.NewUUID(), nil, name, 1, kernel.MustMoney("50"), "", true)
		suite.Require().NoError(err)
		suite.Require().NoError(o.AddItem(item))
	}
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
