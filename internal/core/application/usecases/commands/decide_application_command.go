package commands

import (
	"errors"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/guard"
)

var (
	ErrAcceptApplicationCommandIsNotConstructed = errors.New(
		"AcceptApplicationCommand must be created via NewAcceptApplicationCommand constructor",
	)
	ErrRejectApplicationCommandIsNotConstructed = errors.New(
		"RejectApplicationCommand must be created via NewRejectApplicationCommand constructor",
	)
)

// AcceptApplicationCommand represents the employer choosing one application of their order.
type AcceptApplicationCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	applicationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptApplicationCommand(actor kernel.Actor, applicationID kernel.UUID) (AcceptApplicationCommand, error) {
	cmd := AcceptApplicationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateActor(actor),
		validateID("application", applicationID),
	); err != nil {
		return AcceptApplicationCommand{}, err
	}

	cmd.actor = actor
	cmd.applicationID = applicationID
	return cmd, nil
}

func (c AcceptApplicationCommand) Validate() error {
	return c.guard.Validate(ErrAcceptApplicationCommandIsNotConstructed)
}

func (c AcceptApplicationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c AcceptApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

// RejectApplicationCommand represents the employer declining one pending application.
type RejectApplicationCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	applicationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRejectApplicationCommand(actor kernel.Actor, applicationID kernel.UUID) (RejectApplicationCommand, error) {
	cmd := RejectApplicationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateActor(actor),
		validateID("application", applicationID),
	); err != nil {
		return RejectApplicationCommand{}, err
	}

	cmd.actor = actor
	cmd.applicationID = applicationID
	return cmd, nil
}

func (c RejectApplicationCommand) Validate() error {
	return c.guard.Validate(ErrRejectApplicationCommandIsNotConstructed)
}

func (c RejectApplicationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c RejectApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}
