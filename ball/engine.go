package ball

import (
	"github.com/mo-shahab/bracket-pong/paddle"
	"github.com/mo-shahab/bracket-pong/scores"
)

// MoveAndBounce advances the ball one step and reflects it off the top and
// bottom edges. The coordinate that left the board is kept as is for this
// step, so the ball can be drawn one row outside for a frame.
func (b *Ball) MoveAndBounce() {
	b.X += b.Dx
	b.Y += b.Dy

	// wall collision (top & bottom)
	if b.Y < 0 || b.Y > b.Canvas.Height-1 {
		b.Dy *= -1
	}

	// without scoring the side walls behave like the top and bottom
	if !b.Scoring && (b.X < 0 || b.X > b.Canvas.Width-1) {
		b.Dx *= -1
	}
}

// BounceAndScore checks the side walls for a point, then the paddles for a
// hit. A point short-circuits the paddle checks. On a hit the ball is sent
// back and steered by how far from the paddle center it landed.
func (b *Ball) BounceAndScore(paddles [2]*paddle.Paddle) (scores.Delta, bool) {
	if b.Scoring {
		// ball colliding with the left wall, right player scores
		if b.X <= 0 {
			return scores.RightScored, true
		}
		// ball colliding with the right wall, left player scores
		if b.X >= b.Canvas.Width-1 {
			return scores.LeftScored, true
		}
	}

	for _, p := range paddles {
		if p.InLane(b.X) && p.ContainsY(b.Y) {
			b.Dx *= -1
			b.Dy = (b.Y - p.Y) / 2
		}
	}
	return scores.Delta{}, false
}
