package paddle

import (
	"github.com/mo-shahab/bracket-pong/canvas"
	"github.com/mo-shahab/bracket-pong/input"
)

// Controller turns an input snapshot into a vertical move for one tick
type Controller interface {
	Delta(in input.Snapshot) int
}

// KeyController moves by Speed cells while Up or Down is held. Up is checked
// first, so holding both moves up.
type KeyController struct {
	Up    input.Key
	Down  input.Key
	Speed int
}

func (k KeyController) Delta(in input.Snapshot) int {
	if in.Held(k.Up) {
		return -k.Speed
	} else if in.Held(k.Down) {
		return k.Speed
	}
	return 0
}

// default key bindings
var (
	PlayerOne = KeyController{Up: input.P1Up, Down: input.P1Down, Speed: canvas.PaddleSpeed}
	PlayerTwo = KeyController{Up: input.P2Up, Down: input.P2Down, Speed: canvas.PaddleSpeed}
)
