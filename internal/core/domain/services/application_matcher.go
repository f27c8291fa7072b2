package services

import (
	"fmt"

	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/pkg/errs"
)

// ApplicationMatcher is a domain service that decides applications on behalf of
// the employer who owns the order.
//
// Business rules:
//   - Only the order's employer may accept or reject
//   - Accepting requires the order to be Open
//   - Accepting moves the order to InProgress, marks the chosen application
//     accepted and every other application of the order rejected, so an order
//     never has more than one accepted application
//   - Rejecting requires the application to be Pending
//
// Example usage:
//
//	matcher := services.NewApplicationMatcher()
//	if err := matcher.Accept(actor, o, chosen, siblings); err != nil {
//	    return err
//	}
//	// persist o, chosen and siblings in the same transaction
type ApplicationMatcher struct{}

func NewApplicationMatcher() ApplicationMatcher {
	return ApplicationMatcher{}
}

// Accept selects chosen as the single accepted application of o.
//
// Parameters:
//   - actor: The user performing the decision; must own o
//   - o: The order, loaded under a row lock
//   - chosen: The application to accept; must belong to o
//   - siblings: Every application of o; chosen may or may not be included
//
// Checks are performed in this order: PermissionDenied, then OrderNotOpen.
// Nothing is modified when a check fails.
func (m ApplicationMatcher) Accept(
	actor kernel.Actor,
	o *order.Order,
	chosen *application.Application,
	siblings []*application.Application,
) error {
	if err := m.validate(o, chosen); err != nil {
		return err
	}
	for _, s := range siblings {
		if err := s.Validate(); err != nil {
			return err
		}
		if !s.OrderID().IsEqual(o.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("application",
				fmt.Errorf("application %s belongs to order %s, not %s", s.ID(), s.OrderID(), o.ID()))
		}
	}

	if err := o.EnsureOwnedBy(actor, "accept applications for this order"); err != nil {
		return err
	}

	if err := o.StartWork(); err != nil {
		return err
	}

	chosen.Accept()
	for _, s := range siblings {
		if s.ID().IsEqual(chosen.ID()) {
			continue
		}
		s.ForceReject()
	}

	return nil
}

// Reject declines a pending application of o.
// Checks are performed in this order: PermissionDenied, then NotPending.
func (m ApplicationMatcher) Reject(actor kernel.Actor, o *order.Order, app *application.Application) error {
	if err := m.validate(o, app); err != nil {
		return err
	}

	if err := o.EnsureOwnedBy(actor, "reject applications for this order"); err != nil {
		return err
	}

	return app.Reject()
}

func (m ApplicationMatcher) validate(o *order.Order, app *application.Application) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := app.Validate(); err != nil {
		return err
	}
	if !app.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("application",
			fmt.Errorf("application %s belongs to order %s, not %s", app.ID(), app.OrderID(), o.ID()))
	}
	return nil
}
