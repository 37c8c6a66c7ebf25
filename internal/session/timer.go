package session

// Timer fires every period ticks until stopped. It is polled from the
// simulation step, so a stopped timer can never fire late.
type Timer struct {
	period  int64
	next    int64
	stopped bool
}

// NewTimer creates a timer whose first firing is period ticks after now.
func NewTimer(period int, now int64) *Timer {
	p := int64(max(period, 1))
	return &Timer{period: p, next: now + p}
}

// Due reports whether the timer fires at tick now and schedules the next firing.
func (t *Timer) Due(now int64) bool {
	if t == nil || t.stopped || now < t.next {
		return false
	}
	t.next += t.period
	return true
}

// Stop cancels all future firings.
func (t *Timer) Stop() {
	if t != nil {
		t.stopped = true
	}
}

// Running reports whether the timer can still fire.
func (t *Timer) Running() bool {
	return t != nil && !t.stopped
}
