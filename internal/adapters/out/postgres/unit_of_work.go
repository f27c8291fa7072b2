// Package postgres provides the GORM-based implementation of the Unit of Work pattern
// and the schema of the marketplace.
//
// Every command handler creates a fresh unit of work, begins a transaction, uses the
// repositories bound to it and commits. Repositories obtained before Begin run on
// the plain connection.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.CategoryRepository().IncrementJobCount(ctx, o.CategoryID()); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Order-scoped mutations lock the order row via OrderRepository.GetForUpdate
package postgres

import (
	"context"

	"workify/internal/adapters/out/postgres/applicationrepo"
	"workify/internal/adapters/out/postgres/categoryrepo"
	"workify/internal/adapters/out/postgres/orderrepo"
	"workify/internal/adapters/out/postgres/reviewrepo"
	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/category"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/core/domain/model/review"
	"workify/internal/core/ports"
	"workify/internal/pkg/metrics"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		written: make([]string, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written during it. Tracked aggregates are counted in
// workify_aggregates_committed_total once the transaction commits.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	written []string
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.written = uow.written[:0]
		return err
	}

	for _, kind := range uow.written {
		metrics.IncrementAggregatesCommitted(kind)
	}
	uow.written = uow.written[:0]
	return nil
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which makes
// a deferred Rollback after a successful Commit a harmless no-op.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.written = uow.written[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CategoryRepository() ports.CategoryRepository {
	return categoryrepo.NewGormCategoryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ApplicationRepository() ports.ApplicationRepository {
	return applicationrepo.NewGormApplicationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reviewrepo.NewGormReviewRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(_ kernel.UUID, aggregate any) {
	uow.written = append(uow.written, aggregateKind(aggregate))
}

func aggregateKind(aggregate any) string {
	switch aggregate.(type) {
	case *order.Order:
		return "order"
	case *category.Category:
		return "category"
	case *application.Application:
		return "application"
	case *review.Review:
		return "review"
	default:
		return "other"
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
