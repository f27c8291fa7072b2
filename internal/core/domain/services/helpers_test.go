package services_test

import (
	"testing"

	"workify/internal/core/domain/model/application"
	"workify/internal/core/domain/model/kernel"
	"workify/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newOpenOrder(t *testing.T, employer kernel.Actor) *order.Order {
	t.Helper()
	budget, err := kernel.MoneyFromFloat(1000)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), employer.ID(), kernel.NewUUID(), "Build an API", "", budget)
	require.NoError(t, err)
	return o
}

func apply(t *testing.T, o *order.Order) *application.Application {
	t.Helper()
	a, err := application.NewApplication(kernel.NewUUID(), newActor(t, kernel.RoleWorker), o, "hire me")
	require.NoError(t, err)
	return a
}
