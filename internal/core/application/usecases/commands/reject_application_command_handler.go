package commands

import (
	"context"

	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/services"
)

// RejectApplicationCommandHandler declines a single pending application. The
// order row is locked so a concurrent accept of the same order is serialized
// with the rejection.
type RejectApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
	matcher    services.ApplicationMatcher
}

func NewRejectApplicationCommandHandler(uowFactory ApplicationUoWFactory) RejectApplicationCommandHandler {
	return RejectApplicationCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewApplicationMatcher(),
	}
}

// Handle errors, in check order: errs.ErrObjectNotFound, errs.ErrPermissionDenied,
// application.ErrNotPending.
func (h RejectApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd RejectApplicationCommand,
) (*application.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	appRepo := uow.ApplicationRepository()

	app, err := appRepo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return nil, err
	}

	o, err := uow.OrderRepository().GetForUpdate(ctx, app.OrderID())
	if err != nil {
		return nil, err
	}

	// Re-read under the order lock.
	app, err = appRepo.Get(ctx, app.ID())
	if err != nil {
		return nil, err
	}

	if err = h.matcher.Reject(cmd.Actor(), o, app); err != nil {
		return nil, err
	}

	if err = appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return app, nil
}
