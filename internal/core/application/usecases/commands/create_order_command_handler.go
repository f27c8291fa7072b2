package commands

import (
	"context"

	"workify/internal/core/domain/model/order"
)

// CreateOrderCommandHandler posts a new Open order and increments the open-job
// counter of its category in the same transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrPermissionDenied):
//	    // actor is not an employer
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // category does not exist
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderCategoryUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderCategoryUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the actor is an employer, checks the category exists, inserts
// the order and increments the counter. Either both writes commit or neither does.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := cmd.Actor().EnsureEmployer("create orders"); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Actor().ID(), cmd.CategoryID(), cmd.Title(), cmd.Description(), cmd.Budget())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	categoryRepo := uow.CategoryRepository()
	if _, err = categoryRepo.Get(ctx, cmd.CategoryID()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = categoryRepo.IncrementJobCount(ctx, o.CategoryID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
