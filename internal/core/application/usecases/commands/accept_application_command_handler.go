package commands

import (
	"context"

	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/order"
	"workify/internal/core/domain/services"
)

// AcceptApplicationResult is the accepted application and the order it moved into work.
type AcceptApplicationResult struct {
	Application *application.Application
	Order       *order.Order
}

// AcceptApplicationCommandHandler is the only path by which an application
// decision changes an order: in one transaction it locks the order row, loads
// every application of the order and lets services.ApplicationMatcher move the
// order to InProgress, accept the chosen application and reject the rest.
//
// Example:
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrPermissionDenied):
//	case errors.Is(err, order.ErrOrderNotOpen):
//	    // another application was accepted first
//	}
type AcceptApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
	matcher    services.ApplicationMatcher
}

func NewAcceptApplicationCommandHandler(uowFactory ApplicationUoWFactory) AcceptApplicationCommandHandler {
	return AcceptApplicationCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewApplicationMatcher(),
	}
}

// Handle errors, in check order: errs.ErrObjectNotFound, errs.ErrPermissionDenied,
// order.ErrOrderNotOpen.
func (h AcceptApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptApplicationCommand,
) (AcceptApplicationResult, error) {
	if err := cmd.Validate(); err != nil {
		return AcceptApplicationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptApplicationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	appRepo := uow.ApplicationRepository()
	orderRepo := uow.OrderRepository()

	app, err := appRepo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return AcceptApplicationResult{}, err
	}

	o, err := orderRepo.GetForUpdate(ctx, app.OrderID())
	if err != nil {
		return AcceptApplicationResult{}, err
	}

	siblings, err := appRepo.GetAllByOrder(ctx, o.ID())
	if err != nil {
		return AcceptApplicationResult{}, err
	}

	// Rows read after the lock are authoritative.
	chosen := app
	for _, s := range siblings {
		if s.ID().IsEqual(app.ID()) {
			chosen = s
			break
		}
	}

	if err = h.matcher.Accept(cmd.Actor(), o, chosen, siblings); err != nil {
		return AcceptApplicationResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return AcceptApplicationResult{}, err
	}

	for _, s := range siblings {
		if s.ID().IsEqual(chosen.ID()) {
			continue
		}
		if err = appRepo.Update(ctx, s); err != nil {
			return AcceptApplicationResult{}, err
		}
	}

	if err = appRepo.Update(ctx, chosen); err != nil {
		return AcceptApplicationResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AcceptApplicationResult{}, err
	}

	return AcceptApplicationResult{Application: chosen, Order: o}, nil
}
