// game/engine.go
package game

import (
	"io"
	"log"

	"github.com/mo-shahab/bracket-pong/ball"
	"github.com/mo-shahab/bracket-pong/canvas"
	"github.com/mo-shahab/bracket-pong/input"
	"github.com/mo-shahab/bracket-pong/paddle"
	"github.com/mo-shahab/bracket-pong/scores"
)

// Engine owns the ball, both paddles and the clock, and moves the match
// between Menu, Paused and Playing. It is driven by one Tick per display
// refresh and is not safe for concurrent use.
type Engine struct {
	state      RoundState
	rules      Rules
	canvas     canvas.Canvas
	ball       *ball.Ball
	paddles    [2]*paddle.Paddle
	clock      *Clock
	trajectory *ball.Trajectory

	broadcaster MessageBroadcaster
	logger      *log.Logger
}

type Option func(*Engine)

func WithRules(r Rules) Option {
	return func(e *Engine) { e.rules = r }
}

// WithLogger sets where round events are logged, nothing is logged by default
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithBroadcaster hands every snapshot produced by Tick to b
func WithBroadcaster(b MessageBroadcaster) Option {
	return func(e *Engine) { e.broadcaster = b }
}

// WithControllers replaces the default key bindings of the two paddles
func WithControllers(left, right paddle.Controller) Option {
	return func(e *Engine) {
		e.paddles = [2]*paddle.Paddle{
			paddle.NewPaddle(e.canvas, e.canvas.LeftLane(), left),
			paddle.NewPaddle(e.canvas, e.canvas.RightLane(), right),
		}
	}
}

// NewEngine creates a new game engine instance. rnd picks the launch
// direction of every round.
func NewEngine(rnd ball.Entropy, opts ...Option) *Engine {
	c := canvas.Board()
	e := &Engine{
		rules:      DefaultRules(),
		canvas:     c,
		paddles:    [2]*paddle.Paddle{paddle.Left(c), paddle.Right(c)},
		clock:      NewClock(),
		trajectory: ball.NewTrajectory(rnd),
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.ball = ball.NewBall(c, e.rules.ScoringEnabled)
	if e.rules.ScoringEnabled {
		e.state = Menu
	} else {
		e.state = Paused
	}
	return e
}

// Tick runs one display refresh worth of game and returns what to draw
func (e *Engine) Tick(elapsedMs float64, in input.Snapshot) GameStateSnapshot {
	switch e.state {
	case Menu:
		e.waitStart(in)
	case Paused:
		e.paused(in)
	case Playing:
		e.play(elapsedMs, in)
	}

	snapshot := e.GetGameState()
	if e.broadcaster != nil {
		e.broadcaster.BroadcastGameState(snapshot)
	}
	return snapshot
}

// waitStart keeps everything centered until the start key is held
func (e *Engine) waitStart(in input.Snapshot) {
	e.resetRound()
	if in.Held(input.Start) {
		e.startRound()
	}
}

func (e *Engine) paused(in input.Snapshot) {
	if in.Held(input.Start) {
		e.startRound()
	}
}

// play handles one tick of a running round. The ball only moves when the
// clock lets a step through; the paddles follow input on every tick.
func (e *Engine) play(elapsedMs float64, in input.Snapshot) {
	if e.clock.Advance(elapsedMs) {
		e.ball.MoveAndBounce()
		if delta, scored := e.ball.BounceAndScore(e.paddles); scored {
			e.applyScore(delta)
			e.state = Paused
			e.resetRound()
		}
	}

	e.paddles[0].MovePlayer(in)
	e.paddles[1].MovePlayer(in)
}

func (e *Engine) applyScore(d scores.Delta) {
	e.paddles[0].Score += d.Left
	e.paddles[1].Score += d.Right
	e.logger.Printf("%s Player Scored! Score: %d-%d",
		d.Scorer(), e.paddles[0].Score, e.paddles[1].Score)
}

func (e *Engine) startRound() {
	e.state = Playing
	e.ball.StartMove(e.trajectory)
	e.logger.Printf("Round started, ball velocity (%d,%d)", e.ball.Dx, e.ball.Dy)
}

// resetRound puts the ball and both paddles back in the middle
func (e *Engine) resetRound() {
	e.ball.ResetPosition()
	e.paddles[0].ResetPosition()
	e.paddles[1].ResetPosition()
}

// State returns the current round state
func (e *Engine) State() RoundState {
	return e.state
}

// Rules returns the rules the engine was built with
func (e *Engine) Rules() Rules {
	return e.rules
}

// GetGameState returns a copy of everything a display needs
func (e *Engine) GetGameState() GameStateSnapshot {
	snapshot := GameStateSnapshot{
		State: e.state,
		Ball:  Cell{X: e.ball.X, Y: e.ball.Y},
		Scores: scores.Scores{
			Left:  e.paddles[0].Score,
			Right: e.paddles[1].Score,
		},
	}
	for i, p := range e.paddles {
		snapshot.Paddles[i] = PaddleView{X: p.X, Y: p.Y, HalfHeight: p.HalfHeight}
	}
	return snapshot
}
