package shooter

// timerEpsilon absorbs float drift when frame durations such as 1000/60 ms
// are summed up to a whole period.
const timerEpsilon = 1e-6

// Timer is a periodic callback driven by simulated time. It only advances
// when the simulation does, so pausing the world pauses every timer.
type Timer struct {
	period  float64
	elapsed float64
	stopped bool
	fire    func(t *Timer)
}

// NewTimer creates a running timer that calls fire every periodMs.
// fire may change the period; the new one applies from the next cycle.
func NewTimer(periodMs float64, fire func(t *Timer)) *Timer {
	return &Timer{period: periodMs, fire: fire}
}

// Advance moves the timer forward by ms, firing once per completed period.
func (t *Timer) Advance(ms float64) {
	if t.stopped || t.period <= 0 {
		return
	}
	t.elapsed += ms
	for !t.stopped && t.elapsed+timerEpsilon >= t.period {
		t.elapsed -= t.period
		t.fire(t)
	}
}

// Period returns the current period in milliseconds.
func (t *Timer) Period() float64 {
	return t.period
}

// SetPeriod changes the period.
func (t *Timer) SetPeriod(ms float64) {
	t.period = ms
}

// Stop cancels the timer for good.
func (t *Timer) Stop() {
	t.stopped = true
}

// Stopped reports whether Stop was called.
func (t *Timer) Stopped() bool {
	return t.stopped
}
