package paddle

import (
	"testing"

	"github.com/mo-shahab/bracket-pong/canvas"
	"github.com/mo-shahab/bracket-pong/input"
)

func TestLanesAndCenter(t *testing.T) {
	c := canvas.Board()
	l, r := Left(c), Right(c)
	if l.X != 3 || r.X != 77 {
		t.Fatalf("expected lanes 3 and 77, got=%d and %d", l.X, r.X)
	}
	if l.Y != 25 || r.Y != 25 {
		t.Fatalf("expected centered paddles, got=%d and %d", l.Y, r.Y)
	}
	if l.HalfHeight != 4 {
		t.Fatalf("expected half height 4, got=%d", l.HalfHeight)
	}
}

func TestMovePlayer(t *testing.T) {
	p := Left(canvas.Board())

	p.MovePlayer(input.Keys(input.P1Up))
	if p.Y != 22 {
		t.Fatalf("expected y=22 after up, got=%d", p.Y)
	}
	p.MovePlayer(input.Keys(input.P1Down))
	p.MovePlayer(input.Keys(input.P1Down))
	if p.Y != 28 {
		t.Fatalf("expected y=28 after two downs, got=%d", p.Y)
	}
	p.MovePlayer(input.None)
	if p.Y != 28 {
		t.Fatalf("no keys should not move the paddle, got=%d", p.Y)
	}
	lane := p.X
	p.MovePlayer(input.Keys(input.P2Up, input.P2Down, input.Start))
	if p.Y != 28 || p.X != lane {
		t.Fatalf("other player's keys moved the paddle: got=(%d,%d)", p.X, p.Y)
	}
}

func TestBothKeysHeldMovesUp(t *testing.T) {
	p := Right(canvas.Board())
	p.MovePlayer(input.Keys(input.P2Up, input.P2Down))
	if p.Y != 22 {
		t.Fatalf("up should win when both are held, got=%d", p.Y)
	}
}

func TestPaddleIsNotClamped(t *testing.T) {
	p := Left(canvas.Board())
	for i := 0; i < 20; i++ {
		p.MovePlayer(input.Keys(input.P1Up))
	}
	if p.Y != 25-60 {
		t.Fatalf("expected paddle to leave the board, got=%d", p.Y)
	}
	p.ResetPosition()
	if p.Y != 25 {
		t.Fatalf("reset should recenter, got=%d", p.Y)
	}
}

func TestBandAndLane(t *testing.T) {
	p := Left(canvas.Board())
	if p.Top() != 21 || p.Bottom() != 29 {
		t.Fatalf("expected band [21,29], got=[%d,%d]", p.Top(), p.Bottom())
	}
	for _, y := range []int{21, 25, 29} {
		if !p.ContainsY(y) {
			t.Fatalf("expected y=%d inside the band", y)
		}
	}
	for _, y := range []int{20, 30} {
		if p.ContainsY(y) {
			t.Fatalf("expected y=%d outside the band", y)
		}
	}
	for _, x := range []int{2, 3, 4} {
		if !p.InLane(x) {
			t.Fatalf("expected x=%d in lane", x)
		}
	}
	if p.InLane(1) || p.InLane(5) {
		t.Fatalf("lane should be three cells wide")
	}
}

type fixed int

func (f fixed) Delta(input.Snapshot) int { return int(f) }

func TestCustomController(t *testing.T) {
	p := NewPaddle(canvas.Board(), 10, fixed(-1))
	p.MovePlayer(input.None)
	if p.Y != 24 || p.X != 10 {
		t.Fatalf("expected (10,24), got=(%d,%d)", p.X, p.Y)
	}
}
