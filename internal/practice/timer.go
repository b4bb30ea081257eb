package practice

import "time"

const (
	// TimerStart is the per-question countdown starting value.
	TimerStart = 15.0

	// TickInterval is the real-time spacing between countdown ticks.
	TickInterval = 50 * time.Millisecond

	// TickStep is how much the countdown drops per tick.
	TickStep = 0.05

	// FeedbackDelay is how long the correct/incorrect feedback is shown
	// before the session advances.
	FeedbackDelay = time.Second
)

// Countdown is the per-question timer. At most one countdown is ever
// running; it is stopped on every path that ends or supersedes a question
// so leaked ticks can't drive stale state.
type Countdown struct {
	Remaining float64
	Running   bool
}

// Reset restarts the countdown from TimerStart.
func (c *Countdown) Reset() {
	c.Remaining = TimerStart
	c.Running = true
}

// Stop halts the countdown. Subsequent ticks are no-ops.
func (c *Countdown) Stop() {
	c.Running = false
}

// Tick decrements the countdown by one step and reports whether it
// just expired. Ticks on a stopped countdown are ignored.
func (c *Countdown) Tick() (expired bool) {
	if !c.Running {
		return false
	}
	c.Remaining -= TickStep
	if c.Remaining <= 0 {
		c.Remaining = 0
		c.Running = false
		return true
	}
	return false
}

// Fraction returns the remaining time as a 0-1 ratio for display.
func (c *Countdown) Fraction() float64 {
	return c.Remaining / TimerStart
}
