// Package window runs the game in a desktop window using ebiten.
package window

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/mo-shahab/bracket-pong/canvas"
	"github.com/mo-shahab/bracket-pong/game"
	"github.com/mo-shahab/bracket-pong/input"
	"github.com/mo-shahab/bracket-pong/render"
)

// cell size in pixels
const cellSize = 12

var palette = map[render.Color]color.Color{
	render.White:  color.White,
	render.Gray:   color.RGBA{0x60, 0x60, 0x60, 0xff},
	render.Yellow: color.RGBA{0xff, 0xd7, 0x00, 0xff},
}

// Window implements ebiten.Game around the engine
type Window struct {
	ctx      context.Context
	engine   *game.Engine
	snapshot game.GameStateSnapshot
	face     *text.GoXFace
}

func New(ctx context.Context, engine *game.Engine) *Window {
	return &Window{
		ctx:      ctx,
		engine:   engine,
		snapshot: engine.GetGameState(),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update runs at ebiten's fixed tick rate, each call is one engine tick
func (w *Window) Update() error {
	select {
	case <-w.ctx.Done():
		return ebiten.Termination
	default:
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	elapsed := 1000.0 / float64(ebiten.TPS())
	w.snapshot = w.engine.Tick(elapsed, pressedKeys(ebiten.IsKeyPressed))
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	render.Draw(&surface{dst: screen, face: w.face}, w.snapshot)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return canvas.Width * cellSize, canvas.Height * cellSize
}

// Run opens the window and blocks until it is closed
func Run(ctx context.Context, engine *game.Engine, title string) error {
	ebiten.SetWindowSize(canvas.Width*cellSize, canvas.Height*cellSize)
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(New(ctx, engine)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// pressedKeys reads the held keys: W/S for the left player, the arrow keys
// for the right one and space to start
func pressedKeys(pressed func(ebiten.Key) bool) input.KeySet {
	var keys input.KeySet
	bindings := []struct {
		key  ebiten.Key
		game input.Key
	}{
		{ebiten.KeyW, input.P1Up},
		{ebiten.KeyS, input.P1Down},
		{ebiten.KeyArrowUp, input.P2Up},
		{ebiten.KeyArrowDown, input.P2Down},
		{ebiten.KeySpace, input.Start},
	}
	for _, b := range bindings {
		if pressed(b.key) {
			keys.Press(b.game)
		}
	}
	return keys
}

// surface paints cells onto an ebiten image. Game glyphs become blocks,
// everything else is drawn as text.
type surface struct {
	dst  *ebiten.Image
	face *text.GoXFace
}

func (s *surface) Set(x, y int, glyph rune, fg render.Color) {
	clr := palette[fg]
	px := float32(x * cellSize)
	py := float32(y * cellSize)

	switch glyph {
	case render.BallGlyph, render.PaddleGlyph:
		vector.DrawFilledRect(s.dst, px, py, cellSize, cellSize, clr, false)
	case render.NetGlyph:
		vector.DrawFilledRect(s.dst, px+cellSize/2-1, py, 2, cellSize, clr, false)
	default:
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(px), float64(py))
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(s.dst, string(glyph), s.face, op)
	}
}
