package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/errs"
)

const maxTitleLength = 200

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNotOpen is returned when an operation requires an Open order.
	ErrOrderNotOpen = errors.New("order is no longer open for applications")
)

// Order represents a job posted by an employer. It is the aggregate root that
// manages the order lifecycle from posting through work to completion.
//
// Order follows these invariants:
//   - Must have valid order, employer and category identifiers
//   - Title is required and at most 200 characters
//   - Budget must be positive
//   - Status transitions follow the Status state machine
//   - Only the owning employer may mutate it
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	employerID  kernel.UUID
	categoryID  kernel.UUID
	title       string
	description string
	budget      kernel.Money
	status      Status
	createdAt   time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Open order owned by employerID.
//
// Parameters:
//   - id: Unique identifier for the order
//   - employerID: The employer posting the order
//   - categoryID: The category the order is listed under
//   - title, description: Human readable job description; title is required
//   - budget: Positive amount offered for the job
//
// Returns the order, or the joined validation errors of every invalid field.
//
// Example:
//
//	budget, _ := kernel.MoneyFromFloat(1000)
//	o, err := order.NewOrder(kernel.NewUUID(), employer.ID(), categoryID, "Landing page", "", budget)
func NewOrder(
	id, employerID, categoryID kernel.UUID,
	title, description string,
	budget kernel.Money,
) (*Order, error) {
	o := &Order{
		description:   description,
		status:        Open,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setEmployerID(employerID),
		o.setCategoryID(categoryID),
		o.setTitle(title),
		o.setBudget(budget),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. It applies the same field
// validation as NewOrder and additionally validates the stored status.
func RestoreOrder(
	id, employerID, categoryID kernel.UUID,
	title, description string,
	budget kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, employerID, categoryID, title, description, budget)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) EmployerID() kernel.UUID {
	return o.employerID
}

func (o *Order) CategoryID() kernel.UUID {
	return o.categoryID
}

func (o *Order) Title() string {
	return o.title
}

func (o *Order) Description() string {
	return o.description
}

func (o *Order) Budget() kernel.Money {
	return o.budget
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// EnsureOwnedBy fails with a permission error unless actor is the employer who posted the order.
func (o *Order) EnsureOwnedBy(actor kernel.Actor, action string) error {
	return actor.EnsureIs(o.employerID, action)
}

// ChangeStatus applies an employer-requested status change.
//
// Checks are performed in this order:
//  1. actor must own the order (errs.ErrPermissionDenied)
//  2. requested must be a known status (ErrInvalidStatus)
//  3. requested must be adjacent to the current status (ErrIllegalTransition)
//
// On failure the order is left unchanged.
func (o *Order) ChangeStatus(actor kernel.Actor, requested string) error {
	if err := o.EnsureOwnedBy(actor, "manage this order"); err != nil {
		return err
	}

	next, err := ParseStatus(requested)
	if err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// EnsureOpen returns ErrOrderNotOpen unless the order is Open.
func (o *Order) EnsureOpen() error {
	if o.status != Open {
		return fmt.Errorf("%w: order %s is %s", ErrOrderNotOpen, o.id, o.status)
	}
	return nil
}

// StartWork moves an Open order to InProgress. It is the order-side half of
// accepting an application and must only be called by the application matcher.
func (o *Order) StartWork() error {
	if err := o.EnsureOpen(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(InProgress)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setEmployerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employer", err)
	}
	o.employerID = id
	return nil
}

func (o *Order) setCategoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("category", err)
	}
	o.categoryID = id
	return nil
}

func (o *Order) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	if n := utf8.RuneCountInString(title); n > maxTitleLength {
		return errs.NewValueIsOutOfRangeError("title length", n, 1, maxTitleLength)
	}
	o.title = title
	return nil
}

func (o *Order) setBudget(budget kernel.Money) error {
	if budget.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("budget is invalid", fmt.Errorf("%s is not greater than 0", budget))
	}
	o.budget = budget
	return nil
}
