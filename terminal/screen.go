package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mo-shahab/bracket-pong/input"
	"github.com/mo-shahab/bracket-pong/render"
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleNet     = styleDefault.Foreground(tcell.ColorDarkGray)
	stylePrompt  = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Screen adapts a tcell screen to render.Surface
type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func (s *Screen) Set(x, y int, glyph rune, fg render.Color) {
	s.screen.SetContent(x, y, glyph, nil, styleFor(fg))
}

func (s *Screen) Clear() {
	s.screen.SetStyle(styleDefault)
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func styleFor(c render.Color) tcell.Style {
	switch c {
	case render.Gray:
		return styleNet
	case render.Yellow:
		return stylePrompt
	default:
		return styleDefault
	}
}

// keyFor maps a terminal key press onto a game key: W/S for the left
// player, the arrow keys for the right one and space to start
func keyFor(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.P2Up, true
	case tcell.KeyDown:
		return input.P2Down, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return input.P1Up, true
		case 's', 'S':
			return input.P1Down, true
		case ' ':
			return input.Start, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
