package game

// FrameDuration is the simulation step length in milliseconds
const FrameDuration = 60.0

// Clock is a fixed timestep gate. It collects the elapsed time reported by
// the display and lets one simulation step through once more than Threshold
// milliseconds have built up.
type Clock struct {
	Threshold   float64
	accumulated float64
}

func NewClock() *Clock {
	return &Clock{Threshold: FrameDuration}
}

// Advance adds elapsedMs and reports whether a step should run. The
// accumulator is dropped to zero when it fires, any excess is not carried.
func (c *Clock) Advance(elapsedMs float64) bool {
	c.accumulated += elapsedMs
	if c.accumulated > c.Threshold {
		c.accumulated = 0
		return true
	}
	return false
}

func (c *Clock) Accumulated() float64 {
	return c.accumulated
}
