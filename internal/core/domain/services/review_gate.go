package services

import (
	"fmt"

	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/core/domain/model/review"
	"workify/internal/pkg/errs"
)

// ReviewGate decides whether an employer may review the worker of an order and
// builds the review when every precondition holds.
type ReviewGate struct{}

func NewReviewGate() ReviewGate {
	return ReviewGate{}
}

// Open creates the review of o.
//
// Parameters:
//   - id: Identifier of the new review
//   - reviewer: The acting user; must own o
//   - o: The reviewed order
//   - alreadyReviewed: Whether a review for o is already stored
//   - accepted: The accepted application of o, or nil when there is none
//   - rating, comment: The review content
//
// Checks are performed in this order: OrderNotCompleted, PermissionDenied,
// DuplicateReview, NoAcceptedWorker, InvalidRating. The reviewed worker is
// always taken from the accepted application.
func (g ReviewGate) Open(
	id kernel.UUID,
	reviewer kernel.Actor,
	o *order.Order,
	alreadyReviewed bool,
	accepted *application.Application,
	rating int,
	comment string,
) (*review.Review, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if o.Status() != order.Completed {
		return nil, fmt.Errorf("%w: order %s is %s", review.ErrOrderNotCompleted, o.ID(), o.Status())
	}

	if err := o.EnsureOwnedBy(reviewer, "review this order"); err != nil {
		return nil, err
	}

	if alreadyReviewed {
		return nil, errs.NewObjectAlreadyExistsErrorWithCause("review", o.ID().String(), review.ErrDuplicateReview)
	}

	if accepted == nil || !accepted.IsAccepted() {
		return nil, fmt.Errorf("%w: order %s", review.ErrNoAcceptedWorker, o.ID())
	}
	if !accepted.OrderID().IsEqual(o.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("application",
			fmt.Errorf("application %s belongs to order %s, not %s", accepted.ID(), accepted.OrderID(), o.ID()))
	}

	if err := review.ValidateRating(rating); err != nil {
		return nil, err
	}

	return review.NewReview(id, o.ID(), reviewer.ID(), accepted.WorkerID(), rating, comment)
}
