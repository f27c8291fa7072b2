package order_test

import (
	"strings"
	"testing"
	"time"

	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func mustActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newTestOrder(t *testing.T, employer kernel.Actor) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), employer.ID(), kernel.NewUUID(), "Build a site", "Landing page", mustMoney(t, 1000))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates an open order", func(t *testing.T) {
		employer := mustActor(t, kernel.RoleEmployer)
		o := newTestOrder(t, employer)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Open, o.Status())
		assert.True(t, o.EmployerID().IsEqual(employer.ID()))
		assert.Equal(t, "Build a site", o.Title())
		assert.Equal(t, int64(100000), o.Budget().Cents())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("joins every field error", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, "  ", "", kernel.Money{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "employer")
		assert.Contains(t, err.Error(), "category")
		assert.Contains(t, err.Error(), "budget")
	})

	t.Run("rejects overly long titles", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			strings.Repeat("x", 201), "", mustMoney(t, 10))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreOrder(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"t", "d", mustMoney(t, 5), order.Completed, created)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, o.Status())
	assert.Equal(t, created, o.CreatedAt())

	_, err = order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"t", "d", mustMoney(t, 5), order.Unknown, created)
	require.ErrorIs(t, err, order.ErrInvalidStatus)
}

func TestOrder_Validate(t *testing.T) {
	var zero order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())

	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("owner walks the happy path", func(t *testing.T) {
		employer := mustActor(t, kernel.RoleEmployer)
		o := newTestOrder(t, employer)

		require.NoError(t, o.ChangeStatus(employer, "in_progress"))
		require.NoError(t, o.ChangeStatus(employer, "completed"))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("non owner is denied before status validation", func(t *testing.T) {
		o := newTestOrder(t, mustActor(t, kernel.RoleEmployer))
		stranger := mustActor(t, kernel.RoleEmployer)

		err := o.ChangeStatus(stranger, "not-a-status")

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.Equal(t, order.Open, o.Status())
	})

	t.Run("unknown status is invalid", func(t *testing.T) {
		employer := mustActor(t, kernel.RoleEmployer)
		o := newTestOrder(t, employer)

		err := o.ChangeStatus(employer, "archived")

		require.ErrorIs(t, err, order.ErrInvalidStatus)
		assert.Equal(t, order.Open, o.Status())
	})

	t.Run("completed to in_progress is illegal and leaves state unchanged", func(t *testing.T) {
		employer := mustActor(t, kernel.RoleEmployer)
		o := newTestOrder(t, employer)
		require.NoError(t, o.ChangeStatus(employer, "in_progress"))
		require.NoError(t, o.ChangeStatus(employer, "completed"))

		err := o.ChangeStatus(employer, "in_progress")

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("open to open is illegal", func(t *testing.T) {
		employer := mustActor(t, kernel.RoleEmployer)
		o := newTestOrder(t, employer)

		require.ErrorIs(t, o.ChangeStatus(employer, "open"), order.ErrIllegalTransition)
	})
}

func TestOrder_StartWork(t *testing.T) {
	employer := mustActor(t, kernel.RoleEmployer)
	o := newTestOrder(t, employer)

	require.NoError(t, o.StartWork())
	assert.Equal(t, order.InProgress, o.Status())

	err := o.StartWork()
	require.ErrorIs(t, err, order.ErrOrderNotOpen)
	assert.Equal(t, order.InProgress, o.Status())
}

func TestOrder_EnsureOwnedBy(t *testing.T) {
	employer := mustActor(t, kernel.RoleEmployer)
	o := newTestOrder(t, employer)

	require.NoError(t, o.EnsureOwnedBy(employer, "delete this order"))
	require.ErrorIs(t, o.EnsureOwnedBy(mustActor(t, kernel.RoleWorker), "delete this order"), errs.ErrPermissionDenied)
}
