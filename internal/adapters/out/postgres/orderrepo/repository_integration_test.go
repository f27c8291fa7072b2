package orderrepo_test

import (
	"context"
	"testing"

	"workify/internal/adapters/out/postgres/categoryrepo"
	"workify/internal/adapters/out/postgres/orderrepo"
	"workify/internal/adapters/out/postgres/pgtest"
	"workify/internal/core/domain/model/category"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence against PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	category   *category.Category
	employer   kernel.Actor
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.pg.DB, suite.tracker)

	c, err := category.NewCategory(kernel.NewUUID(), "IT", "")
	suite.Require().NoError(err)
	suite.Require().NoError(categoryrepo.NewGormCategoryRepository(suite.pg.DB, suite.tracker).Add(context.Background(), c))
	suite.category = c

	suite.employer, err = kernel.NewActor(kernel.NewUUID(), kernel.RoleEmployer)
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(categoryID kernel.UUID) *order.Order {
	budget, err := kernel.MoneyFromFloat(1000.50)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), suite.employer.ID(), categoryID, "Landing page", "React", budget)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	o := suite.newOrder(suite.category.ID())

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.True(got.EmployerID().IsEqual(o.EmployerID()))
	suite.True(got.CategoryID().IsEqual(o.CategoryID()))
	suite.Equal("Landing page", got.Title())
	suite.Equal("React", got.Description())
	suite.Equal(int64(100050), got.Budget().Cents())
	suite.Equal(order.Open, got.Status())
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownCategory_NotFound() {
	err := suite.repository.Add(context.Background(), suite.newOrder(kernel.NewUUID()))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructed() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	o := suite.newOrder(suite.category.ID())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.ChangeStatus(suite.employer, "cancelled"))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing_NotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder(suite.category.ID()))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	o := suite.newOrder(suite.category.ID())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o.ID()))

	_, err := suite.repository.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, o.ID()), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := context.Background()
	o := suite.newOrder(suite.category.ID())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	tx := suite.pg.DB.Begin()
	defer tx.Rollback()

	got, err := orderrepo.NewGormOrderRepository(tx, suite.tracker).GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
