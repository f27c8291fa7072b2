package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"workify/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSyncer struct{ mock.Mock }

func (m *MockSyncer) Handle(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCategorySyncJob_Run(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		syncer := new(MockSyncer)
		syncer.On("Handle", mock.Anything).Return(int64(4), nil).Once()

		jobs.NewCategorySyncJob(syncer, jobs.DefaultCategorySyncSchedule, discardLogger()).Run()

		syncer.AssertExpectations(t)
	})

	t.Run("failure is swallowed", func(t *testing.T) {
		syncer := new(MockSyncer)
		syncer.On("Handle", mock.Anything).Return(int64(0), errors.New("db down")).Once()

		assert.NotPanics(t, jobs.NewCategorySyncJob(syncer, jobs.DefaultCategorySyncSchedule, discardLogger()).Run)
		syncer.AssertExpectations(t)
	})

	t.Run("run has a deadline", func(t *testing.T) {
		syncer := new(MockSyncer)
		syncer.On("Handle", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(int64(0), nil).Once()

		jobs.NewCategorySyncJob(syncer, jobs.DefaultCategorySyncSchedule, discardLogger()).Run()

		syncer.AssertExpectations(t)
	})
}

func TestCategorySyncJob_StartRunsOnSchedule(t *testing.T) {
	syncer := new(MockSyncer)
	called := make(chan struct{}, 1)
	syncer.On("Handle", mock.Anything).Return(int64(1), nil).Run(func(mock.Arguments) {
		select {
		case called <- struct{}{}:
		default:
		}
	})

	job := jobs.NewCategorySyncJob(syncer, "* * * * * *", discardLogger())
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-called:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestCategorySyncJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewCategorySyncJob(new(MockSyncer), "every day", discardLogger())
	require.Error(t, job.Start())
}

func TestJobManager(t *testing.T) {
	t.Run("empty schedule disables the sync job", func(t *testing.T) {
		jm := jobs.NewJobManager(new(MockSyncer), "", discardLogger())
		assert.Equal(t, 0, jm.Len())
		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("invalid schedule fails to start", func(t *testing.T) {
		jm := jobs.NewJobManager(new(MockSyncer), "not cron", discardLogger())
		assert.Equal(t, 1, jm.Len())
		require.Error(t, jm.StartAll())
	})

	t.Run("start and stop", func(t *testing.T) {
		jm := jobs.NewJobManager(new(MockSyncer), jobs.DefaultCategorySyncSchedule, discardLogger())
		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})
}
