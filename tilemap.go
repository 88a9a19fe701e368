package lunar

// Tile is a single named cell in a TileMap: a shared sprite region plus an
// optional axis-aligned collider bound, expressed in cell-local
// coordinates. Tiles are passive data; collision and query logic over them
// lives outside this package.
type Tile struct {
	Name  string
	Image *SubTexture
	// Collider is the tile's local collision bound, nil when the tile has
	// no collision.
	Collider *Rect
}

// NewTileWithUV creates a tile whose sprite region is derived from raw UV
// coordinates against the default atlas page.
func NewTileWithUV(name string, u, v, w, h float32) *Tile {
	return &Tile{
		Name:  name,
		Image: NewSubTexture(DefaultTexture(), u, v, w, h),
	}
}

// NewTileFromSubTexture creates a tile from a pre-built shared sprite region.
func NewTileFromSubTexture(name string, image *SubTexture) *Tile {
	return &Tile{Name: name, Image: image}
}

// TileMap is a static, sparse grid of tiles keyed by flattened cell index.
// An absent key is an empty cell. It is constructed once from level data
// and read-only thereafter from this package's perspective.
type TileMap struct {
	width  uint32
	height uint32
	tiles  map[uint32]*Tile
}

// NewTileMap creates an empty map with the given dimensions in cells.
func NewTileMap(width, height uint32) *TileMap {
	return &TileMap{
		width:  width,
		height: height,
		tiles:  make(map[uint32]*Tile),
	}
}

// Size returns the map dimensions in cells.
func (m *TileMap) Size() (width, height uint32) {
	return m.width, m.height
}

// Index flattens cell coordinates into the map key: y*width + x.
func (m *TileMap) Index(x, y uint32) uint32 {
	return y*m.width + x
}

// SetTile places a tile at the cell. A nil tile clears the cell.
func (m *TileMap) SetTile(x, y uint32, tile *Tile) {
	if tile == nil {
		delete(m.tiles, m.Index(x, y))
		return
	}
	m.tiles[m.Index(x, y)] = tile
}

// Tile returns the tile at the cell, if any.
func (m *TileMap) Tile(x, y uint32) (*Tile, bool) {
	t, ok := m.tiles[m.Index(x, y)]
	return t, ok
}

// Len returns the number of occupied cells.
func (m *TileMap) Len() int {
	return len(m.tiles)
}

// ColliderAt returns the world-space collider of the cell, offset by the
// cell position, when the cell holds a tile with a collider. Convenience
// for the external collision layer; cells are unit-size.
func (m *TileMap) ColliderAt(x, y uint32) (Rect, bool) {
	t, ok := m.tiles[m.Index(x, y)]
	if !ok || t.Collider == nil {
		return Rect{}, false
	}
	c := *t.Collider
	c.X += float32(x)
	c.Y += float32(y)
	return c, true
}
