package commands

import (
	"context"

	"workify/internal/core/domain/model/review"
	"workify/internal/core/domain/services"
)

// CreateReviewCommandHandler stores the single review of a completed order.
// The reviewed worker is resolved from the order's accepted application.
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	gate       services.ReviewGate
}

func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
		gate:       services.NewReviewGate(),
	}
}

// Handle errors, in check order: errs.ErrObjectNotFound, review.ErrOrderNotCompleted,
// errs.ErrPermissionDenied, review.ErrDuplicateReview, review.ErrNoAcceptedWorker,
// review.ErrInvalidRating.
func (h CreateReviewCommandHandler) Handle(ctx context.Context, cmd CreateReviewCommand) (*review.Review, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	reviewRepo := uow.ReviewRepository()
	reviewed, err := reviewRepo.ExistsForOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	accepted, err := uow.ApplicationRepository().FindAccepted(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	r, err := h.gate.Open(cmd.ReviewID(), cmd.Actor(), o, reviewed, accepted, cmd.Rating(), cmd.Comment())
	if err != nil {
		return nil, err
	}

	if err = reviewRepo.Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
