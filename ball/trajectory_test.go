package ball

import "testing"

// sequence replays fixed draws, wrapping around
type sequence struct {
	draws []int
	i     int
	calls int
}

func (s *sequence) Intn(n int) int {
	s.calls++
	v := s.draws[s.i%len(s.draws)]
	s.i++
	return v % n
}

func TestTrajectoryRejectsZero(t *testing.T) {
	// 1 maps to 0 and must be redrawn
	src := &sequence{draws: []int{1, 1, 0, 1, 2}}
	dx, dy := NewTrajectory(src).Velocity()
	if dx != -2 || dy != 1 {
		t.Fatalf("expected (-2,1), got=(%d,%d)", dx, dy)
	}
	if src.calls != 5 {
		t.Fatalf("expected 5 draws, got=%d", src.calls)
	}
}

func TestTrajectoryIsDeterministicForSource(t *testing.T) {
	a := NewTrajectory(&sequence{draws: []int{2, 0}})
	b := NewTrajectory(&sequence{draws: []int{2, 0}})
	ax, ay := a.Velocity()
	bx, by := b.Velocity()
	if ax != bx || ay != by {
		t.Fatalf("same draws gave different velocities: (%d,%d) vs (%d,%d)", ax, ay, bx, by)
	}
	if ax != 2 || ay != -1 {
		t.Fatalf("expected (2,-1), got=(%d,%d)", ax, ay)
	}
}

func TestTrajectoryTerminatesOnStuckSource(t *testing.T) {
	src := &sequence{draws: []int{1}}
	dx, dy := NewTrajectory(src).Velocity()
	if dx != SpeedX || dy != SpeedY {
		t.Fatalf("expected fallback (%d,%d), got=(%d,%d)", SpeedX, SpeedY, dx, dy)
	}
	if src.calls != 2*maxDraws {
		t.Fatalf("expected %d draws, got=%d", 2*maxDraws, src.calls)
	}
}
