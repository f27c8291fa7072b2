package commands

import (
	"errors"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand represents the employer rating the worker of a completed order.
// The rating range is checked by the review gate, after the order preconditions.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Actor
	reviewID kernel.UUID
	orderID  kernel.UUID
	rating   int
	comment  string

	guard guard.ConstructorGuard
}

func NewCreateReviewCommand(
	actor kernel.Actor,
	reviewID, orderID kernel.UUID,
	rating int,
	comment string,
) (CreateReviewCommand, error) {
	if err := errors.Join(
		validateActor(actor),
		reviewID.Validate(),
		validateID("order", orderID),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	return CreateReviewCommand{
		actor:    actor,
		reviewID: reviewID,
		orderID:  orderID,
		rating:   rating,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

func (c CreateReviewCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c CreateReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateReviewCommand) Rating() int {
	return c.rating
}

func (c CreateReviewCommand) Comment() string {
	return c.comment
}
