package commands

import (
	"errors"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents an employer posting a new job.
// Title and budget rules are enforced by the Order aggregate when the handler builds it.
//
// Example:
//
//	budget, _ := kernel.MoneyFromFloat(1000)
//	cmd, err := NewCreateOrderCommand(actor, kernel.NewUUID(), categoryID, "Landing page", "", budget)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	orderID     kernel.UUID
	categoryID  kernel.UUID
	title       string
	description string
	budget      kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to post a new order.
func NewCreateOrderCommand(
	actor kernel.Actor,
	orderID, categoryID kernel.UUID,
	title, description string,
	budget kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		title:       title,
		description: description,
		budget:      budget,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setCategoryID(categoryID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c CreateOrderCommand) Title() string {
	return c.title
}

func (c CreateOrderCommand) Description() string {
	return c.description
}

func (c CreateOrderCommand) Budget() kernel.Money {
	return c.budget
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCategoryID(id kernel.UUID) error {
	if err := validateID("category", id); err != nil {
		return err
	}
	c.categoryID = id
	return nil
}
