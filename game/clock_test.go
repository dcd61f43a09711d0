package game

import "testing"

func TestClockFiresAfterThreshold(t *testing.T) {
	c := &Clock{Threshold: 60.0}
	if c.Advance(40) {
		t.Fatalf("first advance should not fire")
	}
	if c.Accumulated() != 40 {
		t.Fatalf("expected 40 accumulated, got=%f", c.Accumulated())
	}
	if !c.Advance(40) {
		t.Fatalf("second advance should fire")
	}
	if c.Accumulated() != 0 {
		t.Fatalf("accumulator should reset after firing, got=%f", c.Accumulated())
	}
}

func TestClockNeedsToExceedThreshold(t *testing.T) {
	c := NewClock()
	if c.Advance(FrameDuration) {
		t.Fatalf("exactly the threshold should not fire")
	}
	if !c.Advance(0.5) {
		t.Fatalf("going past the threshold should fire")
	}
}

func TestClockDropsExcess(t *testing.T) {
	c := NewClock()
	if !c.Advance(500) {
		t.Fatalf("a long frame should fire")
	}
	if c.Advance(1) {
		t.Fatalf("excess time must not be carried into the next step")
	}
}

func TestClockDisplayRateIndependent(t *testing.T) {
	fast, slow := NewClock(), NewClock()
	fastSteps, slowSteps := 0, 0
	// one simulated second at 120Hz and 30Hz
	for i := 0; i < 120; i++ {
		if fast.Advance(1000.0 / 120) {
			fastSteps++
		}
	}
	for i := 0; i < 30; i++ {
		if slow.Advance(1000.0 / 30) {
			slowSteps++
		}
	}
	if fastSteps < 10 || fastSteps > 16 || slowSteps < 10 || slowSteps > 16 {
		t.Fatalf("step rates diverged: fast=%d slow=%d", fastSteps, slowSteps)
	}
}
