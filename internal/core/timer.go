package core

import "time"

// Interval is a polled periodic-callback scheduler. The owner calls Poll from
// its own loop; callbacks therefore run on the caller's goroutine and never
// overlap.
type Interval struct {
	now func() time.Time

	step        time.Duration
	accumulator time.Duration
	last        time.Time
	fn          func()
	running     bool
}

// NewInterval constructs a stopped scheduler reading time from now. A nil
// clock defaults to time.Now.
func NewInterval(now func() time.Time) *Interval {
	if now == nil {
		now = time.Now
	}
	return &Interval{now: now}
}

// Start arms fn to run every d. A schedule that is already running is
// cancelled first, so the first tick of the new schedule lands one full
// interval after Start.
func (s *Interval) Start(d time.Duration, fn func()) {
	s.Stop()
	if d <= 0 {
		d = time.Millisecond
	}
	s.step = d
	s.fn = fn
	s.accumulator = 0
	s.last = s.now()
	s.running = true
}

// Stop cancels the schedule. Stopping an idle scheduler is a no-op.
func (s *Interval) Stop() {
	s.running = false
	s.fn = nil
	s.accumulator = 0
}

// Running reports whether a schedule is armed.
func (s *Interval) Running() bool { return s.running }

// Period returns the interval of the current schedule.
func (s *Interval) Period() time.Duration { return s.step }

// Poll advances the scheduler clock and fires the callback at most once.
// Backlog beyond a single interval is dropped. It reports whether the
// callback ran.
func (s *Interval) Poll() bool {
	if !s.running {
		return false
	}
	now := s.now()
	s.accumulator += now.Sub(s.last)
	s.last = now
	if s.accumulator < s.step {
		return false
	}
	s.accumulator -= s.step
	if s.accumulator >= s.step {
		s.accumulator = 0
	}
	fn := s.fn
	fn()
	return true
}
