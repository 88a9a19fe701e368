package lunar

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one corner of a drawable quad: position, vertex color, and UV.
// The field order matches the attribute layout the consuming renderer
// expects (position, color, texcoord).
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	UV       mgl32.Vec2
}

// Quad is a renderable rectangle with an associated sprite region, ready
// for the external renderer: four vertices and six indices forming two
// triangles.
type Quad struct {
	Vertices [4]Vertex
	Indices  [6]uint16
	Sprite   *SubTexture
}

// vertexColorWhite leaves the sampled texture color untinted.
var vertexColorWhite = mgl32.Vec3{1, 1, 1}

// NewQuad builds a quad anchored at (x, y) with extent (w, h) in the XY
// plane, sampling the given sprite region. Vertices run top-left,
// top-right, bottom-right, bottom-left; indices wind the two triangles
// {0,1,2} and {2,3,0}.
func NewQuad(x, y, w, h float32, sprite *SubTexture) Quad {
	uvs := sprite.UVs()
	return Quad{
		Vertices: [4]Vertex{
			{Position: mgl32.Vec3{x, y, 0}, Color: vertexColorWhite, UV: uvs[0]},
			{Position: mgl32.Vec3{x + w, y, 0}, Color: vertexColorWhite, UV: uvs[1]},
			{Position: mgl32.Vec3{x + w, y + h, 0}, Color: vertexColorWhite, UV: uvs[2]},
			{Position: mgl32.Vec3{x, y + h, 0}, Color: vertexColorWhite, UV: uvs[3]},
		},
		Indices: [6]uint16{0, 1, 2, 2, 3, 0},
		Sprite:  sprite,
	}
}
