// Package terminal runs the game in a terminal using tcell.
package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mo-shahab/bracket-pong/game"
	"github.com/mo-shahab/bracket-pong/input"
	"github.com/mo-shahab/bracket-pong/render"
)

// Run drives the engine from screen until ctx is done or the player quits.
// A key counts as held in the tick its press event arrives, terminals do not
// report releases.
func Run(ctx context.Context, screen tcell.Screen, engine *game.Engine, refresh time.Duration) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	surface := NewScreen(screen)
	surface.Clear()

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	var keys input.KeySet
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					log.Println("Quit requested from the terminal")
					return nil
				}
				if k, ok := keyFor(ev); ok {
					keys.Press(k)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			elapsed := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now

			snapshot := engine.Tick(elapsed, keys)
			keys.Clear()

			render.Draw(surface, snapshot)
			surface.Show()
		}
	}
}
