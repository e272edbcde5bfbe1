package engine

import "time"

// Timer is a cooperative deadline checked against game time each frame
// A zero Timer is disarmed
type Timer struct {
	deadline time.Duration
	period   time.Duration
	armed    bool
}

// Every arms a repeating timer whose first firing is now+period
func (t *Timer) Every(now, period time.Duration) {
	if period <= 0 {
		period = time.Millisecond
	}
	t.period = period
	t.deadline = now + period
	t.armed = true
}

// After arms a one-shot timer firing at now+delay
func (t *Timer) After(now, delay time.Duration) {
	t.period = 0
	t.deadline = now + delay
	t.armed = true
}

// Stop disarms the timer; safe to call repeatedly
func (t *Timer) Stop() {
	t.armed = false
}

// Armed reports whether the timer will fire
func (t *Timer) Armed() bool {
	return t.armed
}

// Deadline returns the next firing time
func (t *Timer) Deadline() time.Duration {
	return t.deadline
}

// Poll reports one due firing and reschedules
// Call in a loop to drain every firing that elapsed within a long frame
func (t *Timer) Poll(now time.Duration) bool {
	if !t.armed || now < t.deadline {
		return false
	}
	if t.period > 0 {
		t.deadline += t.period
	} else {
		t.armed = false
	}
	return true
}
