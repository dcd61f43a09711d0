package scores

import "fmt"

// Delta is the score change produced by a single point, left player first
type Delta struct {
	Left  int
	Right int
}

// the two possible outcomes of a point
var (
	LeftScored  = Delta{Left: 1}
	RightScored = Delta{Right: 1}
)

// Scores is the running tally for both players
type Scores struct {
	Left  int
	Right int
}

// Apply adds the delta to the tally
func (s *Scores) Apply(d Delta) {
	s.Left += d.Left
	s.Right += d.Right
}

// Scorer names the side that won the point, "Left" or "Right"
func (d Delta) Scorer() string {
	switch {
	case d.Left > 0:
		return "Left"
	case d.Right > 0:
		return "Right"
	default:
		return ""
	}
}

func (s Scores) String() string {
	return fmt.Sprintf("%d-%d", s.Left, s.Right)
}
