package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestIntervalFiresOncePerPeriod(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewInterval(clock.Now)
	ticks := 0
	s.Start(100*time.Millisecond, func() { ticks++ })

	clock.Advance(99 * time.Millisecond)
	if s.Poll() {
		t.Fatal("tick fired before the first interval elapsed")
	}
	clock.Advance(time.Millisecond)
	if !s.Poll() {
		t.Fatal("expected tick after one interval")
	}
	if s.Poll() {
		t.Fatal("tick fired twice without time passing")
	}
	if ticks != 1 {
		t.Fatalf("expected 1 tick, got %d", ticks)
	}
}

func TestIntervalDropsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewInterval(clock.Now)
	ticks := 0
	s.Start(10*time.Millisecond, func() { ticks++ })

	clock.Advance(time.Second)
	s.Poll()
	s.Poll()
	s.Poll()
	if ticks != 1 {
		t.Fatalf("expected a stalled scheduler to fire once, got %d", ticks)
	}
}

func TestIntervalStopIsIdempotent(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewInterval(clock.Now)
	s.Stop()
	if s.Running() {
		t.Fatal("never-started scheduler reports running")
	}

	ticks := 0
	s.Start(time.Millisecond, func() { ticks++ })
	s.Stop()
	s.Stop()
	clock.Advance(time.Second)
	if s.Poll() || ticks != 0 {
		t.Fatal("stopped scheduler must not fire")
	}
}

func TestIntervalRestartDoesNotDoubleTick(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewInterval(clock.Now)
	first, second := 0, 0
	s.Start(100*time.Millisecond, func() { first++ })
	clock.Advance(90 * time.Millisecond)
	s.Poll()

	s.Start(50*time.Millisecond, func() { second++ })
	clock.Advance(40 * time.Millisecond)
	s.Poll()
	if first != 0 || second != 0 {
		t.Fatalf("restart must discard the pending tick, got first=%d second=%d", first, second)
	}
	clock.Advance(10 * time.Millisecond)
	s.Poll()
	if first != 0 || second != 1 {
		t.Fatalf("expected exactly one tick on the new schedule, got first=%d second=%d", first, second)
	}
	if s.Period() != 50*time.Millisecond {
		t.Fatalf("expected period 50ms, got %v", s.Period())
	}
}
