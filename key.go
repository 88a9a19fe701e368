package lunar

// Key identifies a keyboard key in the closed set the runtime tracks:
// the letters A–Z, the digits 0–9, Space, and Unknown. Keys are plain
// comparable values, fit for use as map keys and set elements.
type Key uint8

const (
	// KeyUnknown is the canonical target for every label that doesn't
	// match a known key. It can be pressed and released like any other.
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
)

// ParseKey canonicalizes a raw platform key label. Single letters match
// case-insensitively, single digits match directly, and the space bar is
// accepted as "Space" (any case) or the literal " " the DOM delivers.
// Everything else collapses to KeyUnknown.
func ParseKey(label string) Key {
	if len(label) == 1 {
		c := label[0]
		switch {
		case c >= 'a' && c <= 'z':
			return KeyA + Key(c-'a')
		case c >= 'A' && c <= 'Z':
			return KeyA + Key(c-'A')
		case c >= '0' && c <= '9':
			return Key0 + Key(c-'0')
		case c == ' ':
			return KeySpace
		}
		return KeyUnknown
	}
	if equalFoldASCII(label, "space") {
		return KeySpace
	}
	return KeyUnknown
}

// equalFoldASCII is a tiny case-insensitive compare; key labels are ASCII.
func equalFoldASCII(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		a, b := s[i], t[i]
		if a >= 'A' && a <= 'Z' {
			a += 'a' - 'A'
		}
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		if a != b {
			return false
		}
	}
	return true
}

// String returns the canonical label for the key, for debug output.
func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	case k == KeySpace:
		return "Space"
	default:
		return "Unknown"
	}
}
