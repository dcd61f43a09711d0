package paddle

import (
	"github.com/mo-shahab/bracket-pong/canvas"
	"github.com/mo-shahab/bracket-pong/input"
)

// Paddle is one player's bat. X is the lane and never changes after
// construction; Y is the center of the band.
type Paddle struct {
	X          int
	Y          int
	HalfHeight int
	Score      int

	canvas     canvas.Canvas
	controller Controller
}

func NewPaddle(c canvas.Canvas, lane int, controller Controller) *Paddle {
	p := &Paddle{
		X:          lane,
		HalfHeight: canvas.PaddleHalfHeight,
		canvas:     c,
		controller: controller,
	}
	p.ResetPosition()
	return p
}

// Left and Right build the two paddles of a match with their default keys
func Left(c canvas.Canvas) *Paddle {
	return NewPaddle(c, c.LeftLane(), PlayerOne)
}

func Right(c canvas.Canvas) *Paddle {
	return NewPaddle(c, c.RightLane(), PlayerTwo)
}

// ResetPosition centers the paddle vertically
func (p *Paddle) ResetPosition() {
	_, p.Y = p.canvas.Center()
}

// MovePlayer applies this tick's input. The paddle is not kept on the board.
func (p *Paddle) MovePlayer(in input.Snapshot) {
	p.Y += p.controller.Delta(in)
}

// InLane reports whether column x is within one cell of the lane
func (p *Paddle) InLane(x int) bool {
	return x >= p.X-1 && x <= p.X+1
}

// ContainsY reports whether row y is covered by the band
func (p *Paddle) ContainsY(y int) bool {
	return y >= p.Y-p.HalfHeight && y <= p.Y+p.HalfHeight
}

func (p *Paddle) Top() int {
	return p.Y - p.HalfHeight
}

func (p *Paddle) Bottom() int {
	return p.Y + p.HalfHeight
}
