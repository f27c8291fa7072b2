package reviewrepo

import (
	"context"
	"errors"
	"fmt"

	"workify/internal/adapters/out/postgres/pgerr"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/review"
	"workify/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a review. A concurrent second review of the same order hits the
// unique index on order_id and is reported as review.ErrDuplicateReview.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if name, ok := pgerr.UniqueViolation(err); ok && name == uniqueOrder {
			return errs.NewObjectAlreadyExistsErrorWithCause("review", aggregate.OrderID().String(), review.ErrDuplicateReview)
		}
		if _, ok := pgerr.ForeignKeyViolation(err); ok {
			return errs.NewObjectNotFoundErrorWithCause("order", aggregate.OrderID().String(), err)
		}
		return fmt.Errorf("insert review: %w", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ExistsForOrder reports whether orderID already has a review.
func (r *GormReviewRepository) ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error) {
	var dto ReviewDTO
	err := r.db.WithContext(ctx).Select("id").First(&dto, "order_id = ?", orderID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}
