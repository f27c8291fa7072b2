package commands

import (
	"context"
	"fmt"

	"workify/internal/core/domain/model/application"
	"workify/internal/pkg/errs"
)

// SubmitApplicationCommandHandler records a worker's pending application.
//
// The existence pre-check only saves a round trip for the common case; the
// (order, worker) unique index reports concurrent duplicates as
// application.ErrDuplicateApplication too.
type SubmitApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewSubmitApplicationCommandHandler(uowFactory ApplicationUoWFactory) SubmitApplicationCommandHandler {
	return SubmitApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle errors, in check order: errs.ErrPermissionDenied (not a worker),
// errs.ErrObjectNotFound, application.ErrDuplicateApplication, order.ErrOrderNotOpen.
func (h SubmitApplicationCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitApplicationCommand,
) (*application.Application, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	worker := cmd.Actor()
	if err := worker.EnsureWorker("apply to orders"); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	appRepo := uow.ApplicationRepository()
	exists, err := appRepo.ExistsForWorker(ctx, o.ID(), worker.ID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewObjectAlreadyExistsErrorWithCause("application",
			fmt.Sprintf("order %s worker %s", o.ID(), worker.ID()),
			application.ErrDuplicateApplication)
	}

	app, err := application.NewApplication(cmd.ApplicationID(), worker, o, cmd.CoverLetter())
	if err != nil {
		return nil, err
	}

	if err = appRepo.Add(ctx, app); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return app, nil
}
