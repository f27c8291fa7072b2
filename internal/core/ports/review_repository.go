package ports

import (
	"context"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a review. A second review of the same order fails with an
	// error matching review.ErrDuplicateReview.
	Add(ctx context.Context, aggregate *review.Review) error

	// ExistsForOrder reports whether the order already has a review.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
