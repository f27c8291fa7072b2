package application_test

import (
	"strings"
	"testing"
	"time"

	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"
	"workify/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func openOrder(t *testing.T) (*order.Order, kernel.Actor) {
	t.Helper()
	employer := actor(t, kernel.RoleEmployer)
	budget, err := kernel.NewMoney(50000)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), employer.ID(), kernel.NewUUID(), "Fix bugs", "", budget)
	require.NoError(t, err)
	return o, employer
}

func TestNewApplication(t *testing.T) {
	t.Run("worker applies to an open order", func(t *testing.T) {
		o, _ := openOrder(t)
		worker := actor(t, kernel.RoleWorker)

		a, err := application.NewApplication(kernel.NewUUID(), worker, o, "I can do it")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, application.Pending, a.Status())
		assert.True(t, a.OrderID().IsEqual(o.ID()))
		assert.True(t, a.WorkerID().IsEqual(worker.ID()))
		assert.Equal(t, "I can do it", a.CoverLetter())
		assert.True(t, a.IsPending())
	})

	t.Run("cover letter is optional", func(t *testing.T) {
		o, _ := openOrder(t)

		a, err := application.NewApplication(kernel.NewUUID(), actor(t, kernel.RoleWorker), o, "")

		require.NoError(t, err)
		assert.Empty(t, a.CoverLetter())
	})

	t.Run("employers cannot apply", func(t *testing.T) {
		o, employer := openOrder(t)

		_, err := application.NewApplication(kernel.NewUUID(), employer, o, "")

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("order must be open", func(t *testing.T) {
		o, employer := openOrder(t)
		require.NoError(t, o.ChangeStatus(employer, "cancelled"))

		_, err := application.NewApplication(kernel.NewUUID(), actor(t, kernel.RoleWorker), o, "")

		require.ErrorIs(t, err, order.ErrOrderNotOpen)
	})

	t.Run("cover letter is bounded", func(t *testing.T) {
		o, _ := openOrder(t)

		_, err := application.NewApplication(kernel.NewUUID(), actor(t, kernel.RoleWorker), o, strings.Repeat("a", 5001))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("order must be constructed", func(t *testing.T) {
		_, err := application.NewApplication(kernel.NewUUID(), actor(t, kernel.RoleWorker), &order.Order{}, "")
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestApplication_Decisions(t *testing.T) {
	newPending := func(t *testing.T) *application.Application {
		o, _ := openOrder(t)
		a, err := application.NewApplication(kernel.NewUUID(), actor(t, kernel.RoleWorker), o, "")
		require.NoError(t, err)
		return a
	}

	t.Run("accept then reject fails", func(t *testing.T) {
		a := newPending(t)

		a.Accept()
		assert.True(t, a.IsAccepted())
		require.ErrorIs(t, a.Reject(), application.ErrNotPending)
		assert.Equal(t, application.Accepted, a.Status())
	})

	t.Run("reject twice fails", func(t *testing.T) {
		a := newPending(t)

		require.NoError(t, a.Reject())
		require.ErrorIs(t, a.Reject(), application.ErrNotPending)
		assert.Equal(t, application.Rejected, a.Status())
	})

	t.Run("force reject overrides any prior status", func(t *testing.T) {
		accepted := newPending(t)
		accepted.Accept()
		pending := newPending(t)

		accepted.ForceReject()
		pending.ForceReject()

		assert.Equal(t, application.Rejected, accepted.Status())
		assert.Equal(t, application.Rejected, pending.Status())
	})
}

func TestRestoreApplication(t *testing.T) {
	created := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	a, err := application.RestoreApplication(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"letter", application.Rejected, created)
	require.NoError(t, err)
	assert.Equal(t, application.Rejected, a.Status())
	assert.Equal(t, created, a.CreatedAt())

	_, err = application.RestoreApplication(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
		"", application.Unknown, created)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []application.Status{application.Pending, application.Accepted, application.Rejected} {
		parsed, err := application.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := application.ParseStatus("withdrawn")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
