package api_test

import (
	"testing"

	"workify/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(t.Context())
	require.NoError(t, err)

	for _, path := range []string{
		"/api/v1/orders",
		"/api/v1/orders/mine",
		"/api/v1/orders/accepted",
		"/api/v1/orders/{orderId}",
		"/api/v1/orders/{orderId}/status",
		"/api/v1/orders/{orderId}/applications",
		"/api/v1/orders/{orderId}/review",
		"/api/v1/applications",
		"/api/v1/applications/{applicationId}/{action}",
		"/api/v1/reviews",
		"/api/v1/categories",
		"/api/v1/categories/sync",
		"/api/v1/stats",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}
