package game

import (
	"github.com/mo-shahab/bracket-pong/scores"
)

// RoundState is the top level mode of a match
type RoundState uint8

const (
	Menu RoundState = iota
	Paused
	Playing
)

func (s RoundState) String() string {
	switch s {
	case Menu:
		return "Menu"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}

// Rules holds the construction time variation of the game
type Rules struct {
	// ScoringEnabled selects the canonical game with a menu and points. When
	// false there is no menu, the ball reflects off every edge and nobody
	// scores.
	ScoringEnabled bool
}

func DefaultRules() Rules {
	return Rules{ScoringEnabled: true}
}

// Cell is a board position
type Cell struct {
	X, Y int
}

// PaddleView is the drawable part of a paddle: a vertical band of cells
// from Y-HalfHeight to Y+HalfHeight in column X
type PaddleView struct {
	X          int
	Y          int
	HalfHeight int
}

// Cells lists the band top to bottom
func (p PaddleView) Cells() []Cell {
	cells := make([]Cell, 0, 2*p.HalfHeight+1)
	for i := -p.HalfHeight; i <= p.HalfHeight; i++ {
		cells = append(cells, Cell{X: p.X, Y: p.Y + i})
	}
	return cells
}

// GameStateSnapshot represents a point-in-time snapshot of game state
type GameStateSnapshot struct {
	State   RoundState
	Ball    Cell
	Paddles [2]PaddleView
	Scores  scores.Scores
}

// MessageBroadcaster interface for handing snapshots to observers
type MessageBroadcaster interface {
	BroadcastGameState(snapshot GameStateSnapshot)
}
