package http

import (
	"context"
	"log/slog"

	"workify/internal/core/application/usecases/commands"
	"workify/internal/core/application/usecases/queries"
	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/order"
	"workify/internal/core/domain/model/review"
	"workify/internal/generated/servers"
)

type (
	OrdersQueryHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderView, error)
	}

	ApplicationsQueryHandler interface {
		Handle(ctx context.Context, query queries.GetApplicationsQuery) ([]queries.ApplicationView, error)
	}

	ReviewsQueryHandler interface {
		Handle(ctx context.Context, query queries.GetReviewsQuery) ([]queries.ReviewView, error)
	}

	CategoriesQueryHandler interface {
		Handle(ctx context.Context, query queries.GetAllCategoriesQuery) ([]queries.CategoryView, error)
	}

	JobStatsQueryHandler interface {
		Handle(ctx context.Context, query queries.GetJobStatsQuery) (queries.JobStats, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (commands.ChangeOrderStatusResult, error)
	}

	SubmitApplicationHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitApplicationCommand) (*application.Application, error)
	}

	AcceptApplicationHandler interface {
		Handle(ctx context.Context, cmd commands.AcceptApplicationCommand) (commands.AcceptApplicationResult, error)
	}

	RejectApplicationHandler interface {
		Handle(ctx context.Context, cmd commands.RejectApplicationCommand) (*application.Application, error)
	}

	CreateReviewHandler interface {
		Handle(ctx context.Context, cmd commands.CreateReviewCommand) (*review.Review, error)
	}

	SyncCategoryCountsHandler interface {
		Handle(ctx context.Context) (int64, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	GetOrders          OrdersQueryHandler
	GetApplications    ApplicationsQueryHandler
	GetReviews         ReviewsQueryHandler
	GetCategories      CategoriesQueryHandler
	GetJobStats        JobStatsQueryHandler
	CreateOrder        CreateOrderHandler
	DeleteOrder        DeleteOrderHandler
	ChangeOrderStatus  ChangeOrderStatusHandler
	SubmitApplication  SubmitApplicationHandler
	AcceptApplication  AcceptApplicationHandler
	RejectApplication  RejectApplicationHandler
	CreateReview       CreateReviewHandler
	SyncCategoryCounts SyncCategoryCountsHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface. It translates HTTP requests into
// commands and queries and maps their results back to API models.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http_server"),
	}
}
