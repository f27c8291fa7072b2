package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes an order together with its applications and
// review, and decrements the open-job counter of its category atomically.
type DeleteOrderCommandHandler struct {
	uowFactory OrderCategoryUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderCategoryUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ErrObjectNotFound when the order is absent and with
// errs.ErrPermissionDenied when the actor does not own it. In both cases
// nothing is written.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.EnsureOwnedBy(cmd.Actor(), "delete this order"); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.CategoryRepository().DecrementJobCount(ctx, o.CategoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
