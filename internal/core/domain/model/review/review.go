package review

import (
	"errors"
	"fmt"
	"time"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/errs"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")

	// ErrInvalidRating is the cause when a rating falls outside [MinRating, MaxRating].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrDuplicateReview is the cause when the order already has a review.
	ErrDuplicateReview = errors.New("order has already been reviewed")

	// ErrNoAcceptedWorker is returned when the order has no accepted application to review.
	ErrNoAcceptedWorker = errors.New("order has no accepted worker")

	// ErrOrderNotCompleted is returned when reviewing an order that is not completed.
	ErrOrderNotCompleted = errors.New("only completed orders can be reviewed")
)

// Review is the rating an employer left for the worker of a completed order.
type Review struct {
	id         kernel.UUID
	orderID    kernel.UUID
	reviewerID kernel.UUID
	workerID   kernel.UUID
	rating     int
	comment    string
	createdAt  time.Time

	isConstructed bool
}

// NewReview creates a review. Gate checks such as order completion and
// ownership are the responsibility of services.ReviewGate; NewReview only
// validates its own fields.
func NewReview(id, orderID, reviewerID, workerID kernel.UUID, rating int, comment string) (*Review, error) {
	r := &Review{
		comment:       comment,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		requiredID("order", orderID, &r.orderID),
		requiredID("reviewer", reviewerID, &r.reviewerID),
		requiredID("worker", workerID, &r.workerID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview rebuilds a review from persistence.
func RestoreReview(
	id, orderID, reviewerID, workerID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	r, err := NewReview(id, orderID, reviewerID, workerID, rating, comment)
	if err != nil {
		return nil, err
	}
	r.createdAt = createdAt
	return r, nil
}

// ValidateRating reports whether rating is within [MinRating, MaxRating].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeErrorWithCause("rating", rating, MinRating, MaxRating,
			fmt.Errorf("%w: got %d", ErrInvalidRating, rating))
	}
	return nil
}

func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

func (r *Review) ID() kernel.UUID {
	return r.id
}

func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

func (r *Review) ReviewerID() kernel.UUID {
	return r.reviewerID
}

func (r *Review) WorkerID() kernel.UUID {
	return r.workerID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Comment() string {
	return r.comment
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setRating(rating int) error {
	if err := ValidateRating(rating); err != nil {
		return err
	}
	r.rating = rating
	return nil
}

func requiredID(param string, id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	*dst = id
	return nil
}
