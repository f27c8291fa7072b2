// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built directly from SQL, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery, NewGetOrdersOwnedByQuery or NewGetOrdersAcceptedByQuery",
)

// GetOrdersQuery lists orders. Exactly one of the constructors decides its scope:
//
//	NewGetOrdersQuery(&categoryID)    // every order, optionally in one category
//	NewGetOrdersOwnedByQuery(actor)   // orders the employer posted
//	NewGetOrdersAcceptedByQuery(actor) // orders where the worker's application was accepted
type GetOrdersQuery struct {
	categoryID *kernel.UUID
	employerID *kernel.UUID
	workerID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery lists all orders; categoryID narrows the list when not nil.
func NewGetOrdersQuery(categoryID *kernel.UUID) (GetOrdersQuery, error) {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	return GetOrdersQuery{categoryID: categoryID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrdersOwnedByQuery lists the orders posted by actor, who must be an employer.
func NewGetOrdersOwnedByQuery(actor kernel.Actor) (GetOrdersQuery, error) {
	if err := actor.EnsureEmployer("list own orders"); err != nil {
		return GetOrdersQuery{}, err
	}
	id := actor.ID()
	return GetOrdersQuery{employerID: &id, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrdersAcceptedByQuery lists the orders for which actor, a worker, holds
// the accepted application.
func NewGetOrdersAcceptedByQuery(actor kernel.Actor) (GetOrdersQuery, error) {
	if err := actor.EnsureWorker("list accepted orders"); err != nil {
		return GetOrdersQuery{}, err
	}
	id := actor.ID()
	return GetOrdersQuery{workerID: &id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrderView is the read model of an order.
type OrderView struct {
	ID          kernel.UUID
	EmployerID  kernel.UUID
	CategoryID  kernel.UUID
	Title       string
	Description string
	Budget      kernel.Money
	Status      order.Status
	CreatedAt   time.Time
}
