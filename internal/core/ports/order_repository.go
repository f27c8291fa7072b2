// Package ports defines the persistence contracts of the marketplace core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order. Its applications and review are removed with it.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order by its identifier.
	// Returns an errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends, serializing concurrent mutations of the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
