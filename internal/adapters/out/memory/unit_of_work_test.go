package memory_test

import (
	"testing"

	"restaurant/internal/adapters/out/memory"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	factory ports.UnitOfWorkFactory
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.factory = memory.NewUnitOfWorkFactory(memory.NewStore())
}

func (s *UnitOfWorkTestSuite) newTable(number string) *table.Table {
	t, err := table.NewTable(kernel.NewUUID(), nil, number, 4)
	s.Require().NoError(err)
	return t
}

func (s *UnitOfWorkTestSuite) TestTransactionErrors() {
	uow := s.factory.Create()

	s.Require().ErrorIs(uow.Commit(s.T().Context()), memory.ErrNoTransaction)
	s.Require().ErrorIs(uow.Rollback(s.T().Context()), memory.ErrNoTransaction)
}

func (s *UnitOfWorkTestSuite) TestCommitKeepsChanges() {
	ctx := s.T().Context()
	t := s.newTable("T1")

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.TableRepository().Add(ctx, t))
	s.Require().NoError(uow.Commit(ctx))
	s.Require().ErrorIs(uow.Rollback(ctx), memory.ErrNoTransaction, "rollback after commit is a no-op")

	_, err := s.factory.Create().TableRepository().Get(ctx, t.ID())
	s.Require().NoError(err)
}

func (s *UnitOfWorkTestSuite) TestRollbackUndoesEveryWrite() {
	ctx := s.T().Context()
	existing := s.newTable("T1")
	s.Require().NoError(s.factory.Create().TableRepository().Add(ctx, existing))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	added := s.newTable("T2")
	s.Require().NoError(uow.TableRepository().Add(ctx, added))
	orderID := kernel.NewUUID()
	s.Require().NoError(existing.Occupy(orderID))
	s.Require().NoError(uow.TableRepository().Update(ctx, existing))
	s.Require().NoError(uow.SettingRepository().Set(ctx, "restaurantName", "Saffron"))
	s.Require().NoError(uow.Rollback(ctx))

	repo := s.factory.Create().TableRepository()
	_, err := repo.Get(ctx, added.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	restored, err := repo.Get(ctx, existing.ID())
	s.Require().NoError(err)
	s.Equal(table.Free, restored.Status())
	_, err = s.factory.Create().SettingRepository().Get(ctx, "restaurantName")
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UnitOfWorkTestSuite) TestRollbackRestoresDeletedTable() {
	ctx := s.T().Context()
	t := s.newTable("T4")
	s.Require().NoError(s.factory.Create().TableRepository().Add(ctx, t))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.TableRepository().Delete(ctx, t.ID()))
	s.Require().ErrorIs(uow.TableRepository().Delete(ctx, t.ID()), errs.ErrObjectNotFound)
	s.Require().NoError(uow.Rollback(ctx))

	_, err := s.factory.Create().TableRepository().Get(ctx, t.ID())
	s.Require().NoError(err)
}

func (s *UnitOfWorkTestSuite) TestAggregatesAreCopied() {
	ctx := s.T().Context()
	o, err := order.NewOrder(kernel.NewUUID(), order.Pickup, nil, order.Customer{}, now())
	s.Require().NoError(err)
	repo := s.factory.Create().OrderRepository()
	s.Require().NoError(repo.Add(ctx, o))

	item, err := order.NewItem(kernel.NewUUID(), nil, "Chai", 1, kernel.MustMoney("20"), "", true)
	s.Require().NoError(err)
	s.Require().NoError(o.AddItem(item))

	stored, err := repo.Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Empty(stored.Items(), "the caller's copy is not the stored one")
}

func (s *UnitOfWorkTestSuite) TestUniqueness() {
	ctx := s.T().Context()
	uow := s.factory.Create()
	s.Require().NoError(uow.TableRepository().Add(ctx, s.newTable("T1")))

	err := uow.TableRepository().Add(ctx, s.newTable("t1"))

	s.Require().ErrorIs(err, errs.ErrConflict)
}

func (s *UnitOfWorkTestSuite) TestTablesSortedByFloorThenNumber() {
	ctx := s.T().Context()
	uow := s.factory.Create()
	upstairs, err := table.NewFloor(kernel.NewUUID(), "First Floor", 2)
	s.Require().NoError(err)
	ground, err := table.NewFloor(kernel.NewUUID(), "Ground Floor", 1)
	s.Require().NoError(err)
	s.Require().NoError(uow.FloorRepository().Add(ctx, upstairs))
	s.Require().NoError(uow.FloorRepository().Add(ctx, ground))

	upID, groundID := upstairs.ID(), ground.ID()
	for _, tc := range []struct {
		floor  *kernel.UUID
		number string
	}{{&upID, "1"}, {&groundID, "10"}, {&groundID, "2"}, {nil, "1"}} {
		t, tErr := table.NewTable(kernel.NewUUID(), tc.floor, tc.number, 2)
		s.Require().NoError(tErr)
		s.Require().NoError(uow.TableRepository().Add(ctx, t))
	}

	tables, err := uow.TableRepository().GetAll(ctx)
	s.Require().NoError(err)
	var got []string
	for _, t := range tables {
		got = append(got, t.Number())
	}
	s.Equal([]string{"2", "10", "1", "1"}, got)
	s.Nil(tables[3].FloorID())
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
