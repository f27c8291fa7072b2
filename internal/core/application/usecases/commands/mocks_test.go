package commands_test

import (
	"context"
	"testing"
	"time"

	"workify/internal/core/application/usecases/commands"
	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/category"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/core/domain/model/review"
	"workify/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, c *category.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) IncrementJobCount(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryRepository) DecrementJobCount(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryRepository) RecomputeJobCount(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryRepository) RecomputeAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockApplicationRepository struct{ mock.Mock }

func (m *MockApplicationRepository) Add(ctx context.Context, a *application.Application) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockApplicationRepository) Update(ctx context.Context, a *application.Application) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*application.Application, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*application.Application)
	return a, args.Error(1)
}

func (m *MockApplicationRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*application.Application, error) {
	args := m.Called(ctx, orderID)
	apps, _ := args.Get(0).([]*application.Application)
	return apps, args.Error(1)
}

func (m *MockApplicationRepository) ExistsForWorker(ctx context.Context, orderID, workerID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, workerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepository) FindAccepted(ctx context.Context, orderID kernel.UUID) (*application.Application, error) {
	args := m.Called(ctx, orderID)
	a, _ := args.Get(0).(*application.Application)
	return a, args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every narrow unit of work used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CategoryRepository() ports.CategoryRepository {
	return m.Called().Get(0).(ports.CategoryRepository)
}

func (m *MockUoW) ApplicationRepository() ports.ApplicationRepository {
	return m.Called().Get(0).(ports.ApplicationRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	return m.Called().Get(0).(ports.ReviewRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockCategoryUoWFactory struct{ mock.Mock }

func (m *MockCategoryUoWFactory) Create() commands.CategoryUoW {
	return m.Called().Get(0).(commands.CategoryUoW)
}

type MockOrderCategoryUoWFactory struct{ mock.Mock }

func (m *MockOrderCategoryUoWFactory) Create() commands.OrderCategoryUoW {
	return m.Called().Get(0).(commands.OrderCategoryUoW)
}

type MockApplicationUoWFactory struct{ mock.Mock }

func (m *MockApplicationUoWFactory) Create() commands.ApplicationUoW {
	return m.Called().Get(0).(commands.ApplicationUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	return m.Called().Get(0).(commands.ReviewUoW)
}

func newEmployer(t *testing.T) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleEmployer)
	require.NoError(t, err)
	return a
}

func newWorker(t *testing.T) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleWorker)
	require.NoError(t, err)
	return a
}

func newBudget(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func restoreOrder(t *testing.T, employer kernel.Actor, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), employer.ID(), kernel.NewUUID(),
		"Landing page", "", newBudget(t, 100000), status, time.Now())
	require.NoError(t, err)
	return o
}

func restoreApplication(t *testing.T, o *order.Order, status application.Status) *application.Application {
	t.Helper()
	a, err := application.RestoreApplication(kernel.NewUUID(), o.ID(), kernel.NewUUID(),
		"I can do it", status, time.Now())
	require.NoError(t, err)
	return a
}
