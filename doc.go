// Package lunar is the interactive core of a small scene runtime: input
// tracking, camera and object transforms, and a player state machine whose
// drawable quad is handed off to an external renderer.
//
// Lunar deliberately contains no rendering. The platform layer (a window, a
// browser canvas, an [Ebitengine] game loop) pushes raw key labels and
// pointer coordinates in, and reads uniform-ready matrices and textured
// quads back out each frame. The programs under examples/ show an
// Ebitengine adapter doing exactly that.
//
// # Frame contract
//
// The host drives one [Session] per frame:
//
//	session := lunar.NewSession()
//	// on each platform key event:
//	session.Input().SetKeyState(label, isDown)
//	// once per frame:
//	session.Step(dt)
//	view, proj := session.Camera().View(), session.Camera().Projection()
//	quad := session.Player().Quad()
//
// [Player.HandleInput] and [Player.Update] are two independent movement
// channels (a per-call positional nudge and velocity integration). Step
// runs both; hosts that bypass Session must do the same.
//
// # Conventions
//
// All matrices are column-major [mgl32.Mat4] values, composed
// translate → rotate → scale, ready for upload as shader uniforms.
// Transform matrices are recomputed eagerly inside every setter, so
// Matrix() is always consistent with the last-set fields.
//
// [Ebitengine]: https://ebitengine.org
// [mgl32.Mat4]: https://pkg.go.dev/github.com/go-gl/mathgl/mgl32
package lunar
