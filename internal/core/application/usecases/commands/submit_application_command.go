package commands

import (
	"errors"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/guard"
)

var ErrSubmitApplicationCommandIsNotConstructed = errors.New(
	"SubmitApplicationCommand must be created via NewSubmitApplicationCommand constructor",
)

// SubmitApplicationCommand represents a worker applying to an open order.
type SubmitApplicationCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	applicationID kernel.UUID
	orderID       kernel.UUID
	coverLetter   string

	guard guard.ConstructorGuard
}

func NewSubmitApplicationCommand(
	actor kernel.Actor,
	applicationID, orderID kernel.UUID,
	coverLetter string,
) (SubmitApplicationCommand, error) {
	cmd := SubmitApplicationCommand{
		coverLetter: coverLetter,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setApplicationID(applicationID),
		cmd.setOrderID(orderID),
	); err != nil {
		return SubmitApplicationCommand{}, err
	}

	return cmd, nil
}

func (c SubmitApplicationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitApplicationCommandIsNotConstructed)
}

func (c SubmitApplicationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SubmitApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c SubmitApplicationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SubmitApplicationCommand) CoverLetter() string {
	return c.coverLetter
}

func (c *SubmitApplicationCommand) setActor(actor kernel.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *SubmitApplicationCommand) setApplicationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.applicationID = id
	return nil
}

func (c *SubmitApplicationCommand) setOrderID(id kernel.UUID) error {
	if err := validateID("order", id); err != nil {
		return err
	}
	c.orderID = id
	return nil
}
