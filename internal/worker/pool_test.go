package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingJob struct {
	runs int32
	fail bool
	done chan struct{}
}

func (j *countingJob) Process(_ context.Context) error {
	atomic.AddInt32(&j.runs, 1)
	j.done <- struct{}{}
	if j.fail {
		return errors.New("job blew up")
	}
	return nil
}

func waitForRuns(t *testing.T, done chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for job run %d of %d", i+1, n)
		}
	}
}

func TestPool_ProcessesQueuedJobs(t *testing.T) {
	pool := NewPool(2, 8)
	pool.Start()
	defer pool.Stop()

	job := &countingJob{done: make(chan struct{}, 8)}
	for i := 0; i < 3; i++ {
		pool.Enqueue(job)
	}

	waitForRuns(t, job.done, 3)
	assert.Equal(t, int32(3), atomic.LoadInt32(&job.runs))
}

func TestPool_WorkerSurvivesJobError(t *testing.T) {
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	failing := &countingJob{fail: true, done: make(chan struct{}, 1)}
	healthy := &countingJob{done: make(chan struct{}, 1)}
	pool.Enqueue(failing)
	pool.Enqueue(healthy)

	waitForRuns(t, failing.done, 1)
	waitForRuns(t, healthy.done, 1)
	assert.Equal(t, int32(1), atomic.LoadInt32(&healthy.runs))
}
