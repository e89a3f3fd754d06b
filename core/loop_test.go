package core

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingStepper struct {
	n      atomic.Int32
	failAt int32
	err    error
}

func (c *countingStepper) Step() error {
	if n := c.n.Add(1); c.failAt > 0 && n >= c.failAt {
		return c.err
	}
	return nil
}

func TestLoopStopsOnCancel(t *testing.T) {
	s := &countingStepper{}
	loop := NewGameLoop(s, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for s.n.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("loop did not tick")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if loop.Running() {
		t.Fatal("loop still reports running")
	}
}

func TestLoopReturnsTickError(t *testing.T) {
	boom := errors.New("flush failed")
	s := &countingStepper{failAt: 2, err: boom}
	loop := NewGameLoop(s, time.Millisecond)

	err := loop.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run = %v, want tick error", err)
	}
	if got := s.n.Load(); got != 2 {
		t.Fatalf("ticks = %d, want 2", got)
	}
}

func TestLoopStopIsRepeatable(t *testing.T) {
	loop := NewGameLoop(&countingStepper{}, time.Hour)
	loop.Stop()
	loop.Stop()

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run = %v", err)
	}
}
