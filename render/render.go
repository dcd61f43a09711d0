package render

import (
	"strconv"

	"github.com/mo-shahab/bracket-pong/canvas"
	"github.com/mo-shahab/bracket-pong/game"
)

// Color is a display independent palette entry
type Color uint8

const (
	White Color = iota
	Gray
	Yellow
)

// glyphs
const (
	BallGlyph   = '@'
	PaddleGlyph = '#'
	NetGlyph    = '|'
)

const StartPrompt = "Press Space to start"

// Surface is a grid of character cells a display can paint
type Surface interface {
	Set(x, y int, glyph rune, fg Color)
}

// Clearer is implemented by surfaces that keep content between frames
type Clearer interface {
	Clear()
}

// Draw paints a snapshot: net, scores, paddles, ball and, outside of play,
// the start prompt
func Draw(s Surface, snapshot game.GameStateSnapshot) {
	if c, ok := s.(Clearer); ok {
		c.Clear()
	}

	if snapshot.State != game.Playing {
		PrintCentered(s, canvas.Height/2-1, StartPrompt, Yellow)
	}

	drawNet(s)
	drawScores(s, snapshot)

	for _, p := range snapshot.Paddles {
		for _, cell := range p.Cells() {
			s.Set(cell.X, cell.Y, PaddleGlyph, White)
		}
	}
	s.Set(snapshot.Ball.X, snapshot.Ball.Y, BallGlyph, White)
}

func drawNet(s Surface) {
	for y := 0; y <= canvas.Height; y += 2 {
		s.Set(canvas.Width/2, y, NetGlyph, Gray)
	}
}

func drawScores(s Surface, snapshot game.GameStateSnapshot) {
	Print(s, canvas.Margin, 1, strconv.Itoa(snapshot.Scores.Left), White)
	Print(s, canvas.Width-canvas.Margin, 1, strconv.Itoa(snapshot.Scores.Right), White)
}

// Print writes text left to right starting at (x, y)
func Print(s Surface, x, y int, text string, fg Color) {
	for i, r := range []rune(text) {
		s.Set(x+i, y, r, fg)
	}
}

// PrintCentered writes text on row y, centered on the board
func PrintCentered(s Surface, y int, text string, fg Color) {
	n := len([]rune(text))
	Print(s, (canvas.Width-n)/2, y, text, fg)
}
