package commands

import (
	"context"

	"workify/internal/core/domain/model/order"
)

// ChangeOrderStatusResult is the updated order together with the status it left.
type ChangeOrderStatusResult struct {
	Order *order.Order
	From  order.Status
}

// ChangeOrderStatusCommandHandler applies employer-requested status transitions.
// Transitions never touch the category counter; only order creation and
// deletion do.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the order row, applies the transition through the Order
// aggregate and persists it. Errors, in check order: errs.ErrObjectNotFound,
// errs.ErrPermissionDenied, order.ErrInvalidStatus, order.ErrIllegalTransition.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	from := o.Status()
	if err = o.ChangeStatus(cmd.Actor(), cmd.Status()); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	return ChangeOrderStatusResult{Order: o, From: from}, nil
}
