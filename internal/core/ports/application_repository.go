package ports

import (
	"context"

	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/kernel"
)

// ApplicationRepository defines the persistence contract for applications.
type ApplicationRepository interface {
	// Add persists a new application. A second application of the same worker
	// to the same order fails with an error matching application.ErrDuplicateApplication.
	Add(ctx context.Context, aggregate *application.Application) error

	Update(ctx context.Context, aggregate *application.Application) error

	// Get returns an errs.ObjectNotFoundError when the application does not exist.
	Get(ctx context.Context, id kernel.UUID) (*application.Application, error)

	// GetAllByOrder returns every application of the order ordered by creation time.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*application.Application, error)

	// ExistsForWorker reports whether the worker already applied to the order.
	ExistsForWorker(ctx context.Context, orderID, workerID kernel.UUID) (bool, error)

	// FindAccepted returns the accepted application of the order, or nil when there is none.
	FindAccepted(ctx context.Context, orderID kernel.UUID) (*application.Application, error)
}
