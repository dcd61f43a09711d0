package ball

// maxDraws bounds the zero-rejection loop. A source that keeps returning the
// middle value falls back to a positive sign.
const maxDraws = 16

// Entropy is the random source used to pick launch directions.
// *rand.Rand satisfies it.
type Entropy interface {
	Intn(n int) int
}

// Trajectory picks the initial velocity of a round
type Trajectory struct {
	rnd Entropy
}

func NewTrajectory(rnd Entropy) *Trajectory {
	return &Trajectory{rnd: rnd}
}

// Velocity returns a diagonal launch velocity, never zero on either axis
func (t *Trajectory) Velocity() (int, int) {
	dx := t.sign() * SpeedX
	dy := t.sign() * SpeedY
	return dx, dy
}

// sign draws from {-1, 0, 1} until it gets a nonzero value
func (t *Trajectory) sign() int {
	for i := 0; i < maxDraws; i++ {
		if s := t.rnd.Intn(3) - 1; s != 0 {
			return s
		}
	}
	return 1
}
