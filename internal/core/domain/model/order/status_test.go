package order_test

import (
	"fmt"
	"testing"

	"workify/internal/core/domain/model/order"
	"workify/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{order.Open, order.InProgress, order.Completed, order.Cancelled}

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Open))
	assert.Equal(t, 2, int(order.InProgress))
	assert.Equal(t, 3, int(order.Completed))
	assert.Equal(t, 4, int(order.Cancelled))
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every known status", func(t *testing.T) {
		for _, status := range allStatuses {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, raw := range []string{"", "Open", "archived", "unknown", "done"} {
			t.Run(fmt.Sprintf("rejects %q", raw), func(t *testing.T) {
				_, err := order.ParseStatus(raw)

				require.ErrorIs(t, err, order.ErrInvalidStatus)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses {
		require.NoError(t, status.Validate())
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(5)} {
		err := status.Validate()

		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		require.ErrorIs(t, err, order.ErrInvalidStatus)
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "open", order.Open.String())
	assert.Equal(t, "in_progress", order.InProgress.String())
	assert.Equal(t, "completed", order.Completed.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Open:       {order.InProgress, order.Cancelled},
		order.InProgress: {order.Completed, order.Cancelled},
		order.Completed:  {},
		order.Cancelled:  {},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			name := fmt.Sprintf("%s -> %s", from, to)
			expected := contains(allowed[from], to)

			t.Run(name, func(t *testing.T) {
				assert.Equal(t, expected, from.CanTransitionTo(to))

				next, err := from.TransitionTo(to)
				if expected {
					require.NoError(t, err)
					assert.Equal(t, to, next)
					return
				}
				require.ErrorIs(t, err, order.ErrIllegalTransition)
				assert.Equal(t, order.Unknown, next)
			})
		}
	}
}

func TestStatus_SameStatusIsIllegal(t *testing.T) {
	for _, status := range allStatuses {
		_, err := status.TransitionTo(status)
		require.ErrorIs(t, err, order.ErrIllegalTransition)
	}
}

func TestStatus_TransitionToUnknownIsInvalid(t *testing.T) {
	_, err := order.Open.TransitionTo(order.Unknown)

	require.ErrorIs(t, err, order.ErrInvalidStatus)
	assert.NotErrorIs(t, err, order.ErrIllegalTransition)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Open.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.Empty(t, order.Completed.AllowedTransitions())
}

func contains(list []order.Status, s order.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
