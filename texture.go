package lunar

import "github.com/go-gl/mathgl/mgl32"

// Texture is the metadata for one atlas page. Decoding and GPU upload are
// the renderer's job; the core only needs a stable identity and dimensions
// so regions can be derived and batched against the right page.
type Texture struct {
	Name   string
	Width  uint32
	Height uint32
}

// defaultTexture is the shared fallback atlas page used when tiles or
// sprites are constructed from raw UVs without naming a page.
var defaultTexture = &Texture{Name: "default", Width: 1, Height: 1}

// DefaultTexture returns the shared fallback atlas page.
func DefaultTexture() *Texture {
	return defaultTexture
}

// SubTexture is a rectangular region of a texture atlas, identified by UV
// offset and size. SubTextures are freely aliased — many tiles and player
// states commonly share one region — and are read-only after creation, so
// sharing needs no synchronization.
type SubTexture struct {
	Texture *Texture
	// UV is the top-left corner of the region in texture space.
	UV mgl32.Vec2
	// Size is the extent of the region in texture space.
	Size mgl32.Vec2
}

// NewSubTexture creates a region of tex with UV offset (u, v) and size (w, h).
func NewSubTexture(tex *Texture, u, v, w, h float32) *SubTexture {
	return &SubTexture{
		Texture: tex,
		UV:      mgl32.Vec2{u, v},
		Size:    mgl32.Vec2{w, h},
	}
}

// UVs returns the region's corner coordinates in the order top-left,
// top-right, bottom-right, bottom-left — the vertex order quads are
// assembled in.
func (s *SubTexture) UVs() [4]mgl32.Vec2 {
	u, v := s.UV.X(), s.UV.Y()
	w, h := s.Size.X(), s.Size.Y()
	return [4]mgl32.Vec2{
		{u, v},
		{u + w, v},
		{u + w, v + h},
		{u, v + h},
	}
}
