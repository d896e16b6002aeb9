package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type countingJob struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (j *countingJob) Run(context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls++
	return j.err
}

func (j *countingJob) count() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.calls
}

func TestRunOnceWithoutSchedule(t *testing.T) {
	job := &countingJob{}

	err := New("news", job, nopLogger{}, "").Run(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, job.count())
}

func TestRunOncePropagatesJobError(t *testing.T) {
	want := errors.New("write artifact: permission denied")
	job := &countingJob{err: want}

	err := New("news", job, nopLogger{}, "").Run(context.Background())

	assert.Equal(t, true, errors.Is(err, want))
	assert.Equal(t, 1, job.count())
}

func TestRunRejectsInvalidSchedule(t *testing.T) {
	job := &countingJob{}

	err := New("insights", job, nopLogger{}, "not a cron line").Run(context.Background())

	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, job.count())
}

func TestRunScheduledStopsOnCancel(t *testing.T) {
	job := &countingJob{err: errors.New("ignored in scheduled mode")}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- New("insights", job, nopLogger{}, "@every 1h").Run(ctx)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for job.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		assert.Equal(t, nil, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
	assert.Equal(t, 1, job.count())
}
