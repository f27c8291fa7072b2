package commands_test

import (
	"testing"

	"workify/internal/core/application/usecases/commands"
	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitApplicationCommand(t *testing.T) {
	worker := newWorker(t)

	cmd, err := commands.NewSubmitApplicationCommand(worker, kernel.NewUUID(), kernel.NewUUID(), "hello")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "hello", cmd.CoverLetter())

	_, err = commands.NewSubmitApplicationCommand(worker, kernel.NewUUID(), kernel.UUID{}, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	require.ErrorIs(t,
		commands.SubmitApplicationCommand{}.Validate(),
		commands.ErrSubmitApplicationCommandIsNotConstructed)
}

type submitFixture struct {
	orderRepo *MockOrderRepository
	appRepo   *MockApplicationRepository
	uow       *MockUoW
	factory   *MockApplicationUoWFactory
}

func newSubmitFixture() submitFixture {
	f := submitFixture{
		orderRepo: new(MockOrderRepository),
		appRepo:   new(MockApplicationRepository),
		uow:       new(MockUoW),
		factory:   new(MockApplicationUoWFactory),
	}
	f.uow.On("OrderRepository").Return(f.orderRepo)
	f.uow.On("ApplicationRepository").Return(f.appRepo)
	f.factory.On("Create").Return(f.uow)
	return f
}

func TestSubmitApplicationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	worker := newWorker(t)
	o := restoreOrder(t, newEmployer(t), order.Open)
	cmd, err := commands.NewSubmitApplicationCommand(worker, kernel.NewUUID(), o.ID(), "hire me")
	require.NoError(t, err)

	f := newSubmitFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		f.appRepo.On("ExistsForWorker", ctx, o.ID(), worker.ID()).Return(false, nil).Once(),
		f.appRepo.On("Add", ctx, mock.AnythingOfType("*application.Application")).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	app, err := commands.NewSubmitApplicationCommandHandler(f.factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, application.Pending, app.Status())
	assert.True(t, app.WorkerID().IsEqual(worker.ID()))
	assert.True(t, app.OrderID().IsEqual(o.ID()))
	f.appRepo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestSubmitApplicationCommandHandler_Handle_EmployerIsDenied(t *testing.T) {
	cmd, err := commands.NewSubmitApplicationCommand(newEmployer(t), kernel.NewUUID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	f := newSubmitFixture()

	_, err = commands.NewSubmitApplicationCommandHandler(f.factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	f.factory.AssertNotCalled(t, "Create")
}

func TestSubmitApplicationCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	worker := newWorker(t)
	o := restoreOrder(t, newEmployer(t), order.Open)
	cmd, err := commands.NewSubmitApplicationCommand(worker, kernel.NewUUID(), o.ID(), "again")
	require.NoError(t, err)

	f := newSubmitFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	f.appRepo.On("ExistsForWorker", ctx, o.ID(), worker.ID()).Return(true, nil).Once()

	_, err = commands.NewSubmitApplicationCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, application.ErrDuplicateApplication)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	f.appRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitApplicationCommandHandler_Handle_DuplicateFromStorage(t *testing.T) {
	ctx := t.Context()
	worker := newWorker(t)
	o := restoreOrder(t, newEmployer(t), order.Open)
	cmd, err := commands.NewSubmitApplicationCommand(worker, kernel.NewUUID(), o.ID(), "race")
	require.NoError(t, err)

	f := newSubmitFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	f.appRepo.On("ExistsForWorker", ctx, o.ID(), worker.ID()).Return(false, nil).Once()
	f.appRepo.On("Add", ctx, mock.Anything).
		Return(errs.NewObjectAlreadyExistsErrorWithCause("application", "x", application.ErrDuplicateApplication)).Once()

	_, err = commands.NewSubmitApplicationCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, application.ErrDuplicateApplication)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitApplicationCommandHandler_Handle_OrderNotOpen(t *testing.T) {
	ctx := t.Context()
	worker := newWorker(t)
	o := restoreOrder(t, newEmployer(t), order.InProgress)
	cmd, err := commands.NewSubmitApplicationCommand(worker, kernel.NewUUID(), o.ID(), "late")
	require.NoError(t, err)

	f := newSubmitFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	f.appRepo.On("ExistsForWorker", ctx, o.ID(), worker.ID()).Return(false, nil).Once()

	_, err = commands.NewSubmitApplicationCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderNotOpen)
	f.appRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSubmitApplicationCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewSubmitApplicationCommand(newWorker(t), kernel.NewUUID(), id, "")
	require.NoError(t, err)

	f := newSubmitFixture()
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.orderRepo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

	_, err = commands.NewSubmitApplicationCommandHandler(f.factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertExpectations(t)
}
