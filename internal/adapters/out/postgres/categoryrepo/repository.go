package categoryrepo

import (
	"context"
	"errors"
	"fmt"

	"workify/internal/adapters/out/postgres/pgerr"
	"workify/internal/core/domain/model/category"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// openJobsSubquery counts the open orders of the category row being updated.
const openJobsSubquery = "(SELECT count(*) FROM orders WHERE orders.category_id = categories.id AND orders.status = 'open')"

// GormCategoryRepository implements CategoryRepository using GORM.
// Counter updates are single UPDATE statements so concurrent transactions never
// lose an increment or decrement.
type GormCategoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCategoryRepository(db *gorm.DB, tracker aggregateTracker) *GormCategoryRepository {
	return &GormCategoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new category. A duplicate name yields an errs.ObjectAlreadyExistsError.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *category.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if _, ok := pgerr.UniqueViolation(err); ok {
			return errs.NewObjectAlreadyExistsErrorWithCause("category", aggregate.Name(), err)
		}
		return fmt.Errorf("insert category: %w", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a category by ID.
func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// IncrementJobCount runs job_count = job_count + 1.
func (r *GormCategoryRepository) IncrementJobCount(ctx context.Context, id kernel.UUID) error {
	return r.updateCount(ctx, id, gorm.Expr("job_count + ?", 1))
}

// DecrementJobCount runs job_count = GREATEST(job_count - 1, 0).
func (r *GormCategoryRepository) DecrementJobCount(ctx context.Context, id kernel.UUID) error {
	return r.updateCount(ctx, id, gorm.Expr("GREATEST(job_count - ?, 0)", 1))
}

// RecomputeJobCount sets job_count from the live count of open orders.
func (r *GormCategoryRepository) RecomputeJobCount(ctx context.Context, id kernel.UUID) error {
	return r.updateCount(ctx, id, gorm.Expr(openJobsSubquery))
}

// RecomputeAll recomputes the counter of every category in one statement.
func (r *GormCategoryRepository) RecomputeAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&CategoryDTO{}).
		Update("job_count", gorm.Expr(openJobsSubquery))
	if result.Error != nil {
		return 0, fmt.Errorf("recompute category counters: %w", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *GormCategoryRepository) updateCount(ctx context.Context, id kernel.UUID, expr clause.Expr) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CategoryDTO{}).
		Where("id = ?", id.Bytes()).
		Update("job_count", expr)
	if result.Error != nil {
		return fmt.Errorf("update job count: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", id.String())
	}

	return nil
}
