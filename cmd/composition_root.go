package cmd

import (
	"log/slog"

	httpin "workify/internal/adapters/in/http"
	"workify/internal/adapters/out/postgres"
	"workify/internal/core/application/usecases/commands"
	"workify/internal/core/application/usecases/queries"
	"workify/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

// DB exposes the connection for maintenance tasks such as migrations.
func (c *CompositionRoot) DB() *gorm.DB {
	return c.gormDB
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) categoryUoWFactory() commands.CategoryUoWFactory {
	return FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderCategoryUoWFactory() commands.OrderCategoryUoWFactory {
	return FuncOrderCategoryUoWFactory(func() commands.OrderCategoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) applicationUoWFactory() commands.ApplicationUoWFactory {
	return FuncApplicationUoWFactory(func() commands.ApplicationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderCategoryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderCategoryUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitApplicationCommandHandler() commands.SubmitApplicationCommandHandler {
	return commands.NewSubmitApplicationCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateAcceptApplicationCommandHandler() commands.AcceptApplicationCommandHandler {
	return commands.NewAcceptApplicationCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateRejectApplicationCommandHandler() commands.RejectApplicationCommandHandler {
	return commands.NewRejectApplicationCommandHandler(c.applicationUoWFactory())
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() commands.CreateReviewCommandHandler {
	return commands.NewCreateReviewCommandHandler(c.reviewUoWFactory())
}

func (c *CompositionRoot) CreateSyncCategoryCountsCommandHandler() commands.SyncCategoryCountsCommandHandler {
	return commands.NewSyncCategoryCountsCommandHandler(c.categoryUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.categoryUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetApplicationsQueryHandler() queries.GetApplicationsQueryHandler {
	return queries.NewGetApplicationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReviewsQueryHandler() queries.GetReviewsQueryHandler {
	return queries.NewGetReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCategoriesQueryHandler() queries.GetAllCategoriesQueryHandler {
	return queries.NewGetAllCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJobStatsQueryHandler() queries.GetJobStatsQueryHandler {
	return queries.NewGetJobStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		GetOrders:          c.CreateGetOrdersQueryHandler(),
		GetApplications:    c.CreateGetApplicationsQueryHandler(),
		GetReviews:         c.CreateGetReviewsQueryHandler(),
		GetCategories:      c.CreateGetAllCategoriesQueryHandler(),
		GetJobStats:        c.CreateGetJobStatsQueryHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		ChangeOrderStatus:  c.CreateChangeOrderStatusCommandHandler(),
		SubmitApplication:  c.CreateSubmitApplicationCommandHandler(),
		AcceptApplication:  c.CreateAcceptApplicationCommandHandler(),
		RejectApplication:  c.CreateRejectApplicationCommandHandler(),
		CreateReview:       c.CreateCreateReviewCommandHandler(),
		SyncCategoryCounts: c.CreateSyncCategoryCountsCommandHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSyncCategoryCountsCommandHandler(), c.cfg.SyncSchedule(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}

type FuncOrderCategoryUoWFactory func() commands.OrderCategoryUoW

func (f FuncOrderCategoryUoWFactory) Create() commands.OrderCategoryUoW {
	return f()
}

type FuncApplicationUoWFactory func() commands.ApplicationUoW

func (f FuncApplicationUoWFactory) Create() commands.ApplicationUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
