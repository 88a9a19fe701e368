package lunar

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fixed projection parameters. Set once at construction and not mutable at
// runtime — an accepted limitation of this camera.
const (
	cameraFOV    = math.Pi / 4 // 45° vertical field of view
	cameraAspect = 16.0 / 9.0
	cameraNear   = 0.1
	cameraFar    = 100.0
)

// glideAnim holds active glide tweens for the camera's three axes.
type glideAnim struct {
	tweenX, tweenY, tweenZ *gween.Tween
	doneX, doneY, doneZ    bool
}

// Camera wraps the view-side transform state of the scene: a position folded
// into a cached view matrix, plus a fixed perspective projection.
//
// The view matrix is the inverse-style look transform: the stored position
// is the world's translation into view space, so Translate moves the world
// relative to the eye. It is recomputed on every translation, never lazily.
type Camera struct {
	position   mgl32.Vec3
	view       mgl32.Mat4
	projection mgl32.Mat4

	glide *glideAnim
}

// NewCamera creates a camera at the origin with an identity view.
func NewCamera() *Camera {
	return CameraAt(mgl32.Vec3{})
}

// CameraAt creates a camera already placed at position.
func CameraAt(position mgl32.Vec3) *Camera {
	c := &Camera{
		projection: mgl32.Perspective(cameraFOV, cameraAspect, cameraNear, cameraFar),
	}
	c.position = position
	c.recomputeView()
	return c
}

func (c *Camera) recomputeView() {
	c.view = mgl32.Translate3D(c.position.X(), c.position.Y(), c.position.Z())
}

// Translate accumulates a position delta and recomputes the view matrix.
// Any finite delta is accepted; there are no failure modes.
func (c *Camera) Translate(delta mgl32.Vec3) {
	c.position = c.position.Add(delta)
	c.recomputeView()
}

// Position returns the camera's accumulated view-space translation.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// View returns the current view matrix, ready for upload as a shader uniform.
func (c *Camera) View() mgl32.Mat4 { return c.view }

// Projection returns the fixed perspective projection derived from the
// constructor-time field-of-view, aspect, near, and far parameters.
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

// GlideTo animates the camera to the target position over duration seconds
// using the given easing function. A glide in progress is replaced. The
// glide advances in Update.
func (c *Camera) GlideTo(target mgl32.Vec3, duration float32, fn ease.TweenFunc) {
	c.glide = &glideAnim{
		tweenX: gween.New(c.position.X(), target.X(), duration, fn),
		tweenY: gween.New(c.position.Y(), target.Y(), duration, fn),
		tweenZ: gween.New(c.position.Z(), target.Z(), duration, fn),
	}
}

// Update advances an active glide by dt seconds. A no-op when no glide is
// in progress.
func (c *Camera) Update(dt float32) {
	g := c.glide
	if g == nil {
		return
	}
	if !g.doneX {
		val, done := g.tweenX.Update(dt)
		c.position[0] = val
		g.doneX = done
	}
	if !g.doneY {
		val, done := g.tweenY.Update(dt)
		c.position[1] = val
		g.doneY = done
	}
	if !g.doneZ {
		val, done := g.tweenZ.Update(dt)
		c.position[2] = val
		g.doneZ = done
	}
	c.recomputeView()
	if g.doneX && g.doneY && g.doneZ {
		c.glide = nil
	}
}

// Gliding reports whether a glide animation is in progress.
func (c *Camera) Gliding() bool { return c.glide != nil }
