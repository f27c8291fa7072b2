package commands

import (
	"errors"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents an employer moving their order through
// its lifecycle. The requested status is kept as given; an unknown value is
// reported by the handler as order.ErrInvalidStatus after the ownership check.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(actor, orderID, "completed")
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrIllegalTransition) {
//	    // e.g. completed -> in_progress
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID
	status  string

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(actor kernel.Actor, orderID kernel.UUID, status string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested status name.
func (c ChangeOrderStatusCommand) Status() string {
	return c.status
}

func (c *ChangeOrderStatusCommand) setActor(actor kernel.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ChangeOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := validateID("order", id); err != nil {
		return err
	}
	c.orderID = id
	return nil
}
