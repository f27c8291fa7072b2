package http_test

import (
	"context"

	"workify/internal/core/application/usecases/commands"
	"workify/internal/core/application/usecases/queries"
	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/order"
	"workify/internal/core/domain/model/review"

	"github.com/stretchr/testify/mock"
)

type MockOrdersQueryHandler struct{ mock.Mock }

func (m *MockOrdersQueryHandler) Handle(ctx context.Context, q queries.GetOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]queries.OrderView)
	return views, args.Error(1)
}

type MockApplicationsQueryHandler struct{ mock.Mock }

func (m *MockApplicationsQueryHandler) Handle(
	ctx context.Context,
	q queries.GetApplicationsQuery,
) ([]queries.ApplicationView, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]queries.ApplicationView)
	return views, args.Error(1)
}

type MockReviewsQueryHandler struct{ mock.Mock }

func (m *MockReviewsQueryHandler) Handle(ctx context.Context, q queries.GetReviewsQuery) ([]queries.ReviewView, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]queries.ReviewView)
	return views, args.Error(1)
}

type MockCategoriesQueryHandler struct{ mock.Mock }

func (m *MockCategoriesQueryHandler) Handle(
	ctx context.Context,
	q queries.GetAllCategoriesQuery,
) ([]queries.CategoryView, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]queries.CategoryView)
	return views, args.Error(1)
}

type MockJobStatsQueryHandler struct{ mock.Mock }

func (m *MockJobStatsQueryHandler) Handle(ctx context.Context, q queries.GetJobStatsQuery) (queries.JobStats, error) {
	args := m.Called(ctx, q)
	stats, _ := args.Get(0).(queries.JobStats)
	return stats, args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockDeleteOrderHandler struct{ mock.Mock }

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStatusCommand,
) (commands.ChangeOrderStatusResult, error) {
	args := m.Called(ctx, cmd)
	result, _ := args.Get(0).(commands.ChangeOrderStatusResult)
	return result, args.Error(1)
}

type MockSubmitApplicationHandler struct{ mock.Mock }

func (m *MockSubmitApplicationHandler) Handle(
	ctx context.Context,
	cmd commands.SubmitApplicationCommand,
) (*application.Application, error) {
	args := m.Called(ctx, cmd)
	a, _ := args.Get(0).(*application.Application)
	return a, args.Error(1)
}

type MockAcceptApplicationHandler struct{ mock.Mock }

func (m *MockAcceptApplicationHandler) Handle(
	ctx context.Context,
	cmd commands.AcceptApplicationCommand,
) (commands.AcceptApplicationResult, error) {
	args := m.Called(ctx, cmd)
	result, _ := args.Get(0).(commands.AcceptApplicationResult)
	return result, args.Error(1)
}

type MockRejectApplicationHandler struct{ mock.Mock }

func (m *MockRejectApplicationHandler) Handle(
	ctx context.Context,
	cmd commands.RejectApplicationCommand,
) (*application.Application, error) {
	args := m.Called(ctx, cmd)
	a, _ := args.Get(0).(*application.Application)
	return a, args.Error(1)
}

type MockCreateReviewHandler struct{ mock.Mock }

func (m *MockCreateReviewHandler) Handle(ctx context.Context, cmd commands.CreateReviewCommand) (*review.Review, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*review.Review)
	return r, args.Error(1)
}

type MockSyncCategoryCountsHandler struct{ mock.Mock }

func (m *MockSyncCategoryCountsHandler) Handle(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}
