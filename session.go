package lunar

import "github.com/go-gl/mathgl/mgl32"

// cameraSensitivity is the camera fly speed per Step for each held axis key.
const cameraSensitivity = 0.05

// Session owns one InputManager, one Camera, and one Player — the whole
// mutable state of the runtime — and advances them once per frame. The
// platform layer pushes events into Input() between frames and calls
// Step(dt) once per rendered frame; the renderer then reads the camera
// matrices and the player quad.
type Session struct {
	input   *InputManager
	camera  *Camera
	player  *Player
	tileMap *TileMap
}

// NewSession creates a session with empty input state, a default camera,
// and a default player. No tile map is attached.
func NewSession() *Session {
	return &Session{
		input:  NewInputManager(),
		camera: NewCamera(),
		player: NewPlayer(),
	}
}

// NewSessionFromLevel creates a session whose tile map comes from the level
// and whose player starts at the level's spawn position.
func NewSessionFromLevel(level *Level) *Session {
	s := NewSession()
	s.tileMap = level.TileMap
	s.player.Position = level.Spawn
	return s
}

// Input returns the session's input manager.
func (s *Session) Input() *InputManager { return s.input }

// Camera returns the session's camera.
func (s *Session) Camera() *Camera { return s.camera }

// Player returns the session's player.
func (s *Session) Player() *Player { return s.player }

// TileMap returns the attached tile map, nil when none was loaded.
func (s *Session) TileMap() *TileMap { return s.tileMap }

// Step advances the whole session by dt seconds: camera fly keys, glide
// animation, then both player movement channels. It is the one place the
// HandleInput/Update call contract is honored for hosts.
//
// Fly mapping: W/S move along ∓Z, A/D along ±X, Q/E along ∓Y, each by a
// fixed sensitivity per Step while held.
func (s *Session) Step(dt float32) {
	if s.input.KeyState(KeyW) {
		s.camera.Translate(mgl32.Vec3{0, 0, cameraSensitivity})
	}
	if s.input.KeyState(KeyS) {
		s.camera.Translate(mgl32.Vec3{0, 0, -cameraSensitivity})
	}
	if s.input.KeyState(KeyA) {
		s.camera.Translate(mgl32.Vec3{cameraSensitivity, 0, 0})
	}
	if s.input.KeyState(KeyD) {
		s.camera.Translate(mgl32.Vec3{-cameraSensitivity, 0, 0})
	}
	if s.input.KeyState(KeyQ) {
		s.camera.Translate(mgl32.Vec3{0, cameraSensitivity, 0})
	}
	if s.input.KeyState(KeyE) {
		s.camera.Translate(mgl32.Vec3{0, -cameraSensitivity, 0})
	}
	s.camera.Update(dt)

	s.player.HandleInput(s.input)
	s.player.Update(dt)
}
