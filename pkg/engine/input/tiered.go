package input

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Key is a logical key. Several device codes may map to the same Key.
type Key int

const (
	KeyNone Key = iota

	// Movement
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Exit
	KeyExit // Escape / q on a keyboard
	KeyBack // Back button on a gamepad
)

// Snapshot is the set of logical keys held down during one frame.
type Snapshot struct {
	down *mapset.Set[Key]
}

// NewSnapshot returns a snapshot with the given keys down.
func NewSnapshot(keys ...Key) Snapshot {
	down := mapset.New[Key]()
	for _, k := range keys {
		if k != KeyNone {
			down.Put(k)
		}
	}
	return Snapshot{down: &down}
}

// Press marks k as down.
func (s *Snapshot) Press(k Key) {
	if k == KeyNone {
		return
	}
	if s.down == nil {
		down := mapset.New[Key]()
		s.down = &down
	}
	s.down.Put(k)
}

// IsDown reports whether k is held in this snapshot. The zero Snapshot has no keys down.
func (s Snapshot) IsDown(k Key) bool {
	return s.down != nil && s.down.Has(k)
}

// Len returns the number of keys down.
func (s Snapshot) Len() int {
	if s.down == nil {
		return 0
	}
	return s.down.Size()
}

// Provider supplies the raw key state once per frame.
type Provider interface {
	Poll() Snapshot
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() Snapshot

// Poll calls f.
func (f ProviderFunc) Poll() Snapshot {
	return f()
}

// bindings maps device codes to logical keys.
// Multiple codes may point to the same Key.
var bindings = map[string]Key{
	// Movement (WASD, arrows, Vim)
	"w":           KeyUp,
	"arrow_up":    KeyUp,
	"k":           KeyUp,
	"s":           KeyDown,
	"arrow_down":  KeyDown,
	"j":           KeyDown,
	"a":           KeyLeft,
	"arrow_left":  KeyLeft,
	"h":           KeyLeft,
	"d":           KeyRight,
	"arrow_right": KeyRight,
	"l":           KeyRight,

	// Exit
	"escape": KeyExit,
	"q":      KeyExit,
	"ctrl_c": KeyExit,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    KeyUp,
	"gamepad_dpad_down":  KeyDown,
	"gamepad_dpad_left":  KeyLeft,
	"gamepad_dpad_right": KeyRight,
	"gamepad_back":       KeyBack,
}

// KeyForCode returns the logical key bound to a device code, or KeyNone.
func KeyForCode(code string) Key {
	if k, ok := bindings[code]; ok {
		return k
	}
	return KeyNone
}

// Collect folds the device codes seen in one frame into a snapshot. A code
// is a device-specific identifier (e.g. "w", "arrow_up", "gamepad_back");
// unbound codes are ignored.
func Collect(codes []string) Snapshot {
	s := NewSnapshot()
	for _, code := range codes {
		s.Press(KeyForCode(code))
	}
	return s
}

// KeyName returns a human-friendly name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyExit:
		return "Exit"
	case KeyBack:
		return "Back"
	default:
		return "None"
	}
}

// GetBindingsByKey returns the current bindings grouped by key.
func GetBindingsByKey() map[Key][]string {
	result := make(map[Key][]string)
	for code, k := range bindings {
		result[k] = append(result[k], code)
	}
	// Stable ordering so help text doesn't flicker.
	for k, codes := range result {
		sort.Strings(codes)
		result[k] = codes
	}
	return result
}
