package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mo-shahab/bracket-pong/game"
	"github.com/mo-shahab/bracket-pong/input"
	"github.com/mo-shahab/bracket-pong/render"
)

type high struct{}

func (high) Intn(n int) int { return n - 1 }

// states forwards every round state the engine reports
type states chan game.RoundState

func (s states) BroadcastGameState(snapshot game.GameStateSnapshot) {
	select {
	case s <- snapshot.State:
	default:
	}
}

func TestKeyMapping(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want input.Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), input.P1Up},
		{tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), input.P1Down},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.P2Up},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), input.P2Down},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), input.Start},
	}
	for _, c := range cases {
		got, ok := keyFor(c.ev)
		if !ok || got != c.want {
			t.Fatalf("%s: got=%s ok=%v want=%s", c.ev.Name(), got, ok, c.want)
		}
	}
	if _, ok := keyFor(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); ok {
		t.Fatalf("x should not map to a game key")
	}
	if !isQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatalf("escape should quit")
	}
}

func TestScreenDrawsCells(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(80, 51)

	s := NewScreen(sim)
	s.Set(5, 6, render.BallGlyph, render.White)
	s.Show()

	cells, w, _ := sim.GetContents()
	got := cells[6*w+5].Runes
	if len(got) == 0 || got[0] != render.BallGlyph {
		t.Fatalf("expected ball glyph at (5,6), got=%q", got)
	}

	s.Clear()
	s.Show()
	cells, w, _ = sim.GetContents()
	if r := cells[6*w+5].Runes; len(r) > 0 && r[0] == render.BallGlyph {
		t.Fatalf("clear left the ball behind")
	}
}

func TestRunStartsOnSpaceAndQuitsOnEscape(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	seen := make(states, 64)
	engine := game.NewEngine(high{}, game.WithBroadcaster(seen))

	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), sim, engine, 5*time.Millisecond)
	}()

	deadline := time.After(5 * time.Second)
	// first tick means the screen is initialised and taking events
	select {
	case <-seen:
	case <-deadline:
		t.Fatalf("engine never ticked")
	}

	for playing := false; !playing; {
		sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
		select {
		case st := <-seen:
			playing = st == game.Playing
		case <-deadline:
			t.Fatalf("engine never reached Playing")
		}
	}

	for stopped := false; !stopped; {
		sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("run returned error: %v", err)
			}
			stopped = true
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatalf("run did not stop on escape")
		}
	}
}

func TestRunStopsWithContext(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	engine := game.NewEngine(high{})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := Run(ctx, sim, engine, 5*time.Millisecond); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
}
