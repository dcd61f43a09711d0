package input

import "testing"

func TestKeySetPressAndClear(t *testing.T) {
	var s KeySet
	if s.Held(Start) {
		t.Fatalf("empty set should hold nothing")
	}

	s.Press(Start)
	s.Press(P2Down)
	if !s.Held(Start) || !s.Held(P2Down) {
		t.Fatalf("expected start and p2-down held, got=%08b", s)
	}
	if s.Held(P1Up) {
		t.Fatalf("p1-up should not be held")
	}

	s.Clear()
	if s != None {
		t.Fatalf("expected cleared set, got=%08b", s)
	}
}

func TestKeysIgnoresUnknown(t *testing.T) {
	s := Keys(P1Up, Key(42))
	if !s.Held(P1Up) {
		t.Fatalf("expected p1-up held")
	}
	if s.Held(Key(42)) {
		t.Fatalf("unknown key reported held")
	}
	if Key(42).String() != "unknown" {
		t.Fatalf("unexpected name for unknown key: %s", Key(42))
	}
}
