// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"workify/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// OrderUoW manages transactions for order-only operations such as status changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CategoryUoW manages transactions that only touch categories.
	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
	}

	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// OrderCategoryUoW couples an order write with its category counter update.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.CategoryRepository().IncrementJobCount(ctx, o.CategoryID())
	//
	//   err = uow.Commit(ctx)
	OrderCategoryUoW interface {
		TxManager
		OrderRepoFactory
		CategoryRepoFactory
	}

	OrderCategoryUoWFactory interface {
		Create() OrderCategoryUoW
	}

	// ApplicationUoW manages transactions spanning an order and its applications.
	ApplicationUoW interface {
		TxManager
		OrderRepoFactory
		ApplicationRepoFactory
	}

	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// ReviewUoW manages transactions that create a review of an order.
	ReviewUoW interface {
		TxManager
		OrderRepoFactory
		ApplicationRepoFactory
		ReviewRepoFactory
	}

	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
