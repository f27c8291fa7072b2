package ports

import (
	"context"

	"workify/internal/core/domain/model/category"
	"workify/internal/core/domain/model/kernel"
)

// CategoryRepository defines the persistence contract for categories and their
// open-job counters. Counter methods are single atomic statements; callers never
// read the counter, compute and write it back.
type CategoryRepository interface {
	Add(ctx context.Context, aggregate *category.Category) error

	// Get returns an errs.ObjectNotFoundError when the category does not exist.
	Get(ctx context.Context, id kernel.UUID) (*category.Category, error)

	// IncrementJobCount adds one to the category counter.
	IncrementJobCount(ctx context.Context, id kernel.UUID) error

	// DecrementJobCount subtracts one from the category counter, never going below zero.
	DecrementJobCount(ctx context.Context, id kernel.UUID) error

	// RecomputeJobCount sets the counter to the number of open orders in the category.
	RecomputeJobCount(ctx context.Context, id kernel.UUID) error

	// RecomputeAll recomputes every category counter and returns how many categories were updated.
	RecomputeAll(ctx context.Context) (int64, error)
}
