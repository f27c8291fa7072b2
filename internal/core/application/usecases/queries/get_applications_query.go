package queries

import (
	"errors"
	"time"

	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/pkg/guard"
)

var ErrGetApplicationsQueryIsNotConstructed = errors.New(
	"GetApplicationsQuery must be created via NewGetApplicationsQuery constructor",
)

// GetApplicationsQuery lists applications visible to the actor: an employer sees
// the applications to their own orders, a worker sees their own applications.
type GetApplicationsQuery struct {
	actor    kernel.Actor
	orderID  *kernel.UUID
	workerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetApplicationsQuery scopes the list to actor; orderID and workerID narrow it when not nil.
func NewGetApplicationsQuery(actor kernel.Actor, orderID, workerID *kernel.UUID) (GetApplicationsQuery, error) {
	if err := errors.Join(actor.Validate(), validateOptionalID(orderID), validateOptionalID(workerID)); err != nil {
		return GetApplicationsQuery{}, err
	}
	return GetApplicationsQuery{
		actor:    actor,
		orderID:  orderID,
		workerID: workerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetApplicationsQuery) Validate() error {
	return q.guard.Validate(ErrGetApplicationsQueryIsNotConstructed)
}

// ApplicationView is the read model of an application.
type ApplicationView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	WorkerID    kernel.UUID
	CoverLetter string
	Status      application.Status
	CreatedAt   time.Time
}

func validateOptionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}
