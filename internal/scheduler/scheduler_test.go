package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/lcsync/internal/config"
	"github.com/phrazzld/lcsync/internal/platform/logger"
	"github.com/phrazzld/lcsync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSyncer reports each run on runs.
type fakeSyncer struct {
	runs chan context.Context
	err  error
}

func (f *fakeSyncer) Run(ctx context.Context) (*service.Result, error) {
	f.runs <- ctx
	if f.err != nil {
		return nil, f.err
	}
	return &service.Result{RunID: uuid.New()}, nil
}

func testConfig() config.SyncConfig {
	return config.SyncConfig{Timezone: "UTC", Schedule: "0 */6 * * *"}
}

func TestNewValidation(t *testing.T) {
	t.Parallel()
	l, _ := logger.NewTestLogger(t)
	syncer := &fakeSyncer{runs: make(chan context.Context, 8)}

	_, err := New(nil, testConfig(), l)
	assert.Error(t, err)

	cfg := testConfig()
	cfg.Schedule = "every now and then"
	_, err = New(syncer, cfg, l)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Timezone = "Mars/Olympus_Mons"
	_, err = New(syncer, cfg, l)
	assert.Error(t, err)
}

func TestNextRunFollowsSchedule(t *testing.T) {
	t.Parallel()
	l, _ := logger.NewTestLogger(t)

	s, err := New(&fakeSyncer{runs: make(chan context.Context, 8)}, testConfig(), l)
	require.NoError(t, err)
	s.Start(context.Background())
	defer s.Stop()

	next := s.NextRun().UTC()
	assert.True(t, next.After(time.Now().Add(-time.Second)))
	assert.Equal(t, 0, next.Minute())
	assert.Equal(t, 0, next.Hour()%6)
}

func TestRunNowPassesContext(t *testing.T) {
	t.Parallel()
	l, buf := logger.NewTestLogger(t)

	syncer := &fakeSyncer{runs: make(chan context.Context, 8)}
	s, err := New(syncer, testConfig(), l)
	require.NoError(t, err)

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "marker")
	s.Start(ctx)
	defer s.Stop()

	s.RunNow()

	select {
	case got := <-syncer.runs:
		assert.Equal(t, "marker", got.Value(key{}))
	case <-time.After(5 * time.Second):
		t.Fatal("sync was not run")
	}

	assert.Eventually(t, func() bool {
		_, ok := buf.Find("scheduled sync finished")
		return ok
	}, 5*time.Second, 10*time.Millisecond)
}

func TestRunFailureIsLogged(t *testing.T) {
	t.Parallel()
	l, buf := logger.NewTestLogger(t)

	syncer := &fakeSyncer{
		runs: make(chan context.Context, 8),
		err:  errors.New("notion: 401 token secret_abcdefghijklmnop"),
	}
	s, err := New(syncer, testConfig(), l)
	require.NoError(t, err)
	s.Start(context.Background())
	defer s.Stop()

	s.RunNow()
	<-syncer.runs

	assert.Eventually(t, func() bool {
		_, ok := buf.Find("scheduled sync failed")
		return ok
	}, 5*time.Second, 10*time.Millisecond)
	assert.NotContains(t, buf.String(), "secret_abcdefghijklmnop")
}
