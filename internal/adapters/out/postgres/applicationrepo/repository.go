package applicationrepo

import (
	"context"
	"errors"
	"fmt"

	"workify/internal/adapters/out/postgres/pgerr"
	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormApplicationRepository implements ApplicationRepository using GORM.
type GormApplicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormApplicationRepository(db *gorm.DB, tracker aggregateTracker) *GormApplicationRepository {
	return &GormApplicationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a pending application. The (order, worker) unique index is the
// authoritative duplicate check.
func (r *GormApplicationRepository) Add(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if name, ok := pgerr.UniqueViolation(err); ok && name == uniqueOrderWorker {
			return errs.NewObjectAlreadyExistsErrorWithCause("application",
				fmt.Sprintf("order %s worker %s", aggregate.OrderID(), aggregate.WorkerID()),
				application.ErrDuplicateApplication)
		}
		if _, ok := pgerr.ForeignKeyViolation(err); ok {
			return errs.NewObjectNotFoundErrorWithCause("order", aggregate.OrderID().String(), err)
		}
		return fmt.Errorf("insert application: %w", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the application status.
func (r *GormApplicationRepository) Update(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ApplicationDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		if name, ok := pgerr.UniqueViolation(result.Error); ok && name == UniqueAcceptedPerOrder {
			return errs.NewObjectAlreadyExistsErrorWithCause("accepted application",
				aggregate.OrderID().String(), order.ErrOrderNotOpen)
		}
		return fmt.Errorf("update application: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("application", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an application by ID.
func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*application.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("application", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder returns the applications of an order, oldest first.
func (r *GormApplicationRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*application.Application, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ApplicationDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	apps := make([]*application.Application, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}

	return apps, nil
}

// ExistsForWorker reports whether workerID already applied to orderID.
func (r *GormApplicationRepository) ExistsForWorker(ctx context.Context, orderID, workerID kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ApplicationDTO{}).
		Where("order_id = ? AND worker_id = ?", orderID.Bytes(), workerID.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// FindAccepted returns the accepted application of orderID, or nil.
func (r *GormApplicationRepository) FindAccepted(
	ctx context.Context,
	orderID kernel.UUID,
) (*application.Application, error) {
	var dtos []ApplicationDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID.Bytes(), application.Accepted.String()).
		Limit(1).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, nil //nolint:nilnil
	}

	return toDomain(dtos[0])
}
