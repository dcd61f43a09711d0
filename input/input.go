package input

// Key is a logical key the game reacts to. Displays map their physical keys
// onto these.
type Key uint8

const (
	P1Up Key = iota
	P1Down
	P2Up
	P2Down
	Start
	numKeys
)

var keyNames = [numKeys]string{"p1-up", "p1-down", "p2-up", "p2-down", "start"}

func (k Key) String() string {
	if k >= numKeys {
		return "unknown"
	}
	return keyNames[k]
}

// Snapshot answers whether a key is held during the current tick
type Snapshot interface {
	Held(k Key) bool
}

// KeySet is a Snapshot backed by a bit set, filled by a display each tick
type KeySet uint8

// Keys builds a KeySet holding the given keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s.Press(k)
	}
	return s
}

func (s KeySet) Held(k Key) bool {
	return k < numKeys && s&(1<<k) != 0
}

func (s *KeySet) Press(k Key) {
	if k < numKeys {
		*s |= 1 << k
	}
}

func (s *KeySet) Clear() {
	*s = 0
}

// None is a snapshot with nothing held
var None KeySet
