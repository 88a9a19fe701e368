package lunar

import "github.com/go-gl/mathgl/mgl32"

// InputManager owns the set of currently-pressed keys and the last-known
// pointer position. The platform layer pushes events in (KeyDown, KeyUp,
// SetMousePosition); the rest of the runtime only queries.
//
// A key is in the pressed set iff the most recent event for it was a
// key-down with no intervening key-up. Every operation is total: there are
// no failure paths anywhere in input handling.
type InputManager struct {
	pressed map[Key]struct{}
	mouse   mgl32.Vec2
}

// NewInputManager creates an InputManager with empty state.
func NewInputManager() *InputManager {
	return &InputManager{pressed: make(map[Key]struct{})}
}

// KeyDown marks the key as pressed. Idempotent.
func (m *InputManager) KeyDown(key Key) {
	m.pressed[key] = struct{}{}
}

// KeyUp marks the key as released. Idempotent; releasing a key that isn't
// pressed is a no-op.
func (m *InputManager) KeyUp(key Key) {
	delete(m.pressed, key)
}

// SetKeyState canonicalizes a raw platform key label via ParseKey and
// records the press or release. Unrecognized labels collapse to KeyUnknown,
// which is tracked like any other key rather than dropped.
func (m *InputManager) SetKeyState(label string, down bool) {
	key := ParseKey(label)
	if key == KeyUnknown {
		warnUnknownLabel(label)
	}
	if down {
		m.KeyDown(key)
	} else {
		m.KeyUp(key)
	}
}

// KeyState reports whether the key is currently pressed. No side effects.
func (m *InputManager) KeyState(key Key) bool {
	_, ok := m.pressed[key]
	return ok
}

// ConsumeKeyState reports whether the key is currently pressed and releases
// it in the same step. Use it where an action should fire at most once per
// press, regardless of how long the key is held.
func (m *InputManager) ConsumeKeyState(key Key) bool {
	_, ok := m.pressed[key]
	if ok {
		delete(m.pressed, key)
	}
	return ok
}

// SetMousePosition overwrites the pointer position unconditionally.
func (m *InputManager) SetMousePosition(x, y float32) {
	m.mouse = mgl32.Vec2{x, y}
}

// MousePosition returns the last-known pointer position in screen space.
func (m *InputManager) MousePosition() mgl32.Vec2 {
	return m.mouse
}
