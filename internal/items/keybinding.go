package items

import (
	"fmt"
	"strings"
)

// KeyBinding is a key chord that runs an item without typing its path.
type KeyBinding struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
}

// ParseKeyBinding parses chords such as "ctrl+k", "alt+shift+f2" or "f5".
// Modifier names are case-insensitive and may appear in any order.
func ParseKeyBinding(s string) (KeyBinding, error) {
	var kb KeyBinding

	parts := strings.Split(strings.TrimSpace(s), "+")
	for i, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if i == len(parts)-1 {
			if part == "" {
				return KeyBinding{}, fmt.Errorf("key binding %q has no key", s)
			}
			kb.Key = part
			break
		}

		switch part {
		case "ctrl", "control":
			kb.Ctrl = true
		case "alt", "option":
			kb.Alt = true
		case "shift":
			kb.Shift = true
		default:
			return KeyBinding{}, fmt.Errorf("key binding %q: unknown modifier %q", s, part)
		}
	}

	return kb, nil
}

// String renders the chord in the form terminal key events use, modifiers
// ordered alt, ctrl, shift.
func (k KeyBinding) String() string {
	var b strings.Builder
	if k.Alt {
		b.WriteString("alt+")
	}
	if k.Ctrl {
		b.WriteString("ctrl+")
	}
	if k.Shift {
		b.WriteString("shift+")
	}
	b.WriteString(k.Key)
	return b.String()
}

// Matches reports whether a key event string (e.g. "ctrl+k") is this chord.
func (k KeyBinding) Matches(event string) bool {
	other, err := ParseKeyBinding(event)
	if err != nil {
		return false
	}
	return other == k
}
