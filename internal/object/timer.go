package object

// Timer is a frame counter that fires when it reaches its delay. Step may be
// fractional so a delay of 40 with step 1.3 fires every 31 frames.
type Timer struct {
	Count float64
	Step  float64
	Delay float64
}

// NewTimer creates a timer starting at zero.
func NewTimer(step, delay float64) Timer {
	return Timer{Step: step, Delay: delay}
}

// Tick advances the counter. Returns true, and resets to zero, when it fires.
func (t *Timer) Tick() bool {
	t.Count += t.Step
	if t.Count >= t.Delay {
		t.Count = 0
		return true
	}
	return false
}

// Cooldown blocks an action for Delay frames after it was last triggered.
type Cooldown struct {
	Remaining int
	Delay     int
}

// NewCooldown creates a cooldown that is ready immediately.
func NewCooldown(delay int) Cooldown {
	return Cooldown{Delay: delay}
}

// Tick counts one frame down, stopping at zero.
func (c *Cooldown) Tick() {
	if c.Remaining > 0 {
		c.Remaining--
	}
}

// Ready reports whether the action may fire.
func (c *Cooldown) Ready() bool {
	return c.Remaining == 0
}

// Trigger starts the cooldown.
func (c *Cooldown) Trigger() {
	c.Remaining = c.Delay
}
