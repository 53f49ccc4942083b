package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingReaper struct {
	calls atomic.Int64
	err   error
}

func (r *countingReaper) DeleteExpired(ctx context.Context) (int64, error) {
	r.calls.Add(1)
	if r.err != nil {
		return 0, r.err
	}
	return 3, nil
}

func TestScheduler_TicksUntilCancelled(t *testing.T) {
	reaper := &countingReaper{}
	s := New(reaper, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	time.Sleep(60 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}

	assert.GreaterOrEqual(t, reaper.calls.Load(), int64(2))
}

func TestScheduler_SurvivesReaperErrors(t *testing.T) {
	reaper := &countingReaper{err: errors.New("db down")}
	s := New(reaper, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	// Errors are logged, not fatal: the loop keeps ticking.
	assert.GreaterOrEqual(t, reaper.calls.Load(), int64(2))
}
