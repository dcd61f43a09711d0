package ball

import (
	"github.com/mo-shahab/bracket-pong/canvas"
)

// ball constants
const (
	SpeedX = 2
	SpeedY = 1
)

// Ball is the authoritative ball, in board cells and cells per step
type Ball struct {
	X, Y   int
	Dx, Dy int

	Canvas canvas.Canvas

	// Scoring selects the canonical rules. When false the ball reflects off
	// the left and right edges instead of scoring.
	Scoring bool
}

func NewBall(c canvas.Canvas, scoring bool) *Ball {
	b := &Ball{Canvas: c, Scoring: scoring}
	b.ResetPosition()
	return b
}

// ResetPosition puts the ball back in the middle of the board at rest
func (b *Ball) ResetPosition() {
	b.X, b.Y = b.Canvas.Center()
	b.Dx = 0
	b.Dy = 0
}

// StartMove launches the ball on a fresh diagonal
func (b *Ball) StartMove(t *Trajectory) {
	b.Dx, b.Dy = t.Velocity()
}

// Moving reports whether the ball has a velocity
func (b *Ball) Moving() bool {
	return b.Dx != 0 || b.Dy != 0
}
