package canvas

// board constants
const (
	Width  = 80
	Height = 50
)

// paddle constants
const (
	Margin           = Width / 25
	PaddleHalfHeight = Height/10 - 1
	PaddleSpeed      = 3
)

// Canvas is the fixed cell grid the ball and paddles live on
type Canvas struct {
	Width  int
	Height int
}

// Board returns the canvas every game is played on
func Board() Canvas {
	return Canvas{Width: Width, Height: Height}
}

// Center returns the middle cell of the canvas
func (c Canvas) Center() (int, int) {
	return c.Width / 2, c.Height / 2
}

// LeftLane is the fixed column of the first player's paddle
func (c Canvas) LeftLane() int {
	return Margin
}

// RightLane is the fixed column of the second player's paddle
func (c Canvas) RightLane() int {
	return c.Width - Margin
}

// Contains reports whether the cell lies on the canvas
func (c Canvas) Contains(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}
