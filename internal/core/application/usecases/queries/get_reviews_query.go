package queries

import (
	"errors"
	"time"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/guard"
)

var ErrGetReviewsQueryIsNotConstructed = errors.New(
	"GetReviewsQuery must be created via NewGetReviewsQuery constructor",
)

// GetReviewsQuery lists reviews visible to the actor: an employer sees the
// reviews of their own orders, a worker sees the reviews written about them.
type GetReviewsQuery struct {
	actor    kernel.Actor
	orderID  *kernel.UUID
	workerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReviewsQuery scopes the list to actor; orderID and workerID narrow it when not nil.
func NewGetReviewsQuery(actor kernel.Actor, orderID, workerID *kernel.UUID) (GetReviewsQuery, error) {
	if err := errors.Join(actor.Validate(), validateOptionalID(orderID), validateOptionalID(workerID)); err != nil {
		return GetReviewsQuery{}, err
	}
	return GetReviewsQuery{
		actor:    actor,
		orderID:  orderID,
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewsQueryIsNotConstructed)
}

// ReviewView is the read model of a review.
type ReviewView struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	ReviewerID kernel.UUID
	WorkerID   kernel.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}
