package application

import (
	"errors"
	"fmt"
	"time"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/pkg/errs"
)

const maxCoverLetterLength = 5000

var (
	// ErrApplicationIsNotConstructed is returned when an Application was not created
	// through NewApplication or RestoreApplication.
	ErrApplicationIsNotConstructed = errors.New("Application must be created via NewApplication constructor")

	// ErrNotPending is returned when a decision is made on an application that was already decided.
	ErrNotPending = errors.New("application is not pending")

	// ErrDuplicateApplication is the cause when a worker applies to the same order twice.
	ErrDuplicateApplication = errors.New("worker has already applied to this order")
)

// Application is a worker's bid on an order.
//
// Invariants:
//   - At most one application per (order, worker) pair; enforced by storage.
//   - Status only moves away from Pending, and only once.
//   - At most one Accepted application per order; enforced by the
//     ApplicationMatcher domain service and a storage constraint.
type Application struct {
	id             kernel.UUID
	orderID        kernel.UUID
	workerID       kernel.UUID
	coverLetter string
	status      Status
	createdAt   time.Time

	isConstructed bool
}

// NewApplication creates a pending application from worker to o.
// Only workers may apply and only while the order is Open.
func NewApplication(
	id kernel.UUID,
	worker kernel.Actor,
	o *order.Order,
	coverLetter string,
) (*Application, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := worker.EnsureWorker("apply to orders"); err != nil {
		return nil, err
	}
	if err := o.EnsureOpen(); err != nil {
		return nil, err
	}

	a := &Application{
		orderID:       o.ID(),
		workerID:      worker.ID(),
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setCoverLetter(coverLetter),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreApplication rebuilds an application from persistence.
func RestoreApplication(
	id, orderID, workerID kernel.UUID,
	coverLetter string,
	status Status,
	createdAt time.Time,
) (*Application, error) {
	a := &Application{
		coverLetter:   coverLetter,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		requiredID("order", orderID, &a.orderID),
		requiredID("worker", workerID, &a.workerID),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Application) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrApplicationIsNotConstructed
	}
	return nil
}

func (a *Application) ID() kernel.UUID {
	return a.id
}

func (a *Application) OrderID() kernel.UUID {
	return a.orderID
}

func (a *Application) WorkerID() kernel.UUID {
	return a.workerID
}

func (a *Application) CoverLetter() string {
	return a.coverLetter
}

func (a *Application) Status() Status {
	return a.status
}

func (a *Application) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Application) IsPending() bool {
	return a.status == Pending
}

func (a *Application) IsAccepted() bool {
	return a.status == Accepted
}

// Accept marks the application as accepted regardless of its previous decision.
// The open-order precondition lives in services.ApplicationMatcher, which is
// the only caller allowed to accept.
func (a *Application) Accept() {
	a.status = Accepted
}

// Reject marks a pending application as rejected.
func (a *Application) Reject() error {
	if err := a.ensurePending(); err != nil {
		return err
	}
	a.status = Rejected
	return nil
}

// ForceReject rejects a sibling of the accepted application whatever its prior status.
func (a *Application) ForceReject() {
	a.status = Rejected
}

func (a *Application) ensurePending() error {
	if a.status != Pending {
		return fmt.Errorf("%w: application %s is %s", ErrNotPending, a.id, a.status)
	}
	return nil
}

func (a *Application) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Application) setCoverLetter(letter string) error {
	if len([]rune(letter)) > maxCoverLetterLength {
		return errs.NewValueIsOutOfRangeError("cover letter length", len([]rune(letter)), 0, maxCoverLetterLength)
	}
	a.coverLetter = letter
	return nil
}

func requiredID(param string, id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	*dst = id
	return nil
}
