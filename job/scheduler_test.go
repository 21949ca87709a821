package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobScheduler_FirstRunIsImmediate(t *testing.T) {
	ran := make(chan struct{}, 1)

	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "dispatch-scan",
		Interval: time.Hour,
		Timeout:  time.Second,
		Fn: func(context.Context) error {
			ran <- struct{}{}
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler.Start(ctx)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}

	cancel()
	scheduler.Shutdown()
}

func TestJobScheduler_RepeatsAtInterval(t *testing.T) {
	var ticks atomic.Int32

	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "dispatch-scan",
		Interval: 5 * time.Millisecond,
		Timeout:  time.Second,
		Fn: func(context.Context) error {
			ticks.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	require.Eventually(t, func() bool { return ticks.Load() >= 3 },
		time.Second, time.Millisecond)

	cancel()
	scheduler.Shutdown()
}

func TestJobScheduler_CancelStopsTheLoop(t *testing.T) {
	var ticks atomic.Int32

	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "dispatch-scan",
		Interval: 5 * time.Millisecond,
		Timeout:  time.Second,
		Fn: func(context.Context) error {
			ticks.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	require.Eventually(t, func() bool { return ticks.Load() >= 1 },
		time.Second, time.Millisecond)

	cancel()
	scheduler.Shutdown()

	settled := ticks.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, settled, ticks.Load())
}

func TestJobScheduler_TimeoutCancelsSlowJob(t *testing.T) {
	sawCancel := make(chan struct{}, 1)

	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "slow-scan",
		Interval: time.Hour,
		Timeout:  5 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			<-ctx.Done()
			sawCancel <- struct{}{}
			return ctx.Err()
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	select {
	case <-sawCancel:
	case <-time.After(time.Second):
		t.Fatal("job context never expired")
	}

	cancel()
	scheduler.Shutdown()
}

func TestJobScheduler_FailingJobKeepsTicking(t *testing.T) {
	var attempts atomic.Int32

	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "flaky-scan",
		Interval: 5 * time.Millisecond,
		Timeout:  time.Second,
		Fn: func(context.Context) error {
			attempts.Add(1)
			return errors.New("scan failed")
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	// An error from one execution must not kill the schedule.
	require.Eventually(t, func() bool { return attempts.Load() >= 2 },
		time.Second, time.Millisecond)

	cancel()
	scheduler.Shutdown()
}

func TestJobScheduler_RunsJobsIndependently(t *testing.T) {
	var scans, sweeps atomic.Int32

	scheduler := NewJobScheduler()
	scheduler.Add(Job{
		Name:     "dispatch-scan",
		Interval: 5 * time.Millisecond,
		Timeout:  time.Second,
		Fn: func(context.Context) error {
			scans.Add(1)
			return nil
		},
	})
	scheduler.Add(Job{
		Name:     "archive-sweep",
		Interval: 5 * time.Millisecond,
		Timeout:  time.Second,
		Fn: func(context.Context) error {
			sweeps.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	require.Eventually(t, func() bool {
		return scans.Load() >= 2 && sweeps.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	scheduler.Shutdown()
}
