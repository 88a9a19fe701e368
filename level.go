package lunar

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Level is a loaded level document: the tile grid plus the player spawn
// position. Level data arrives from outside the runtime; this loader is the
// module's only error surface.
type Level struct {
	TileMap *TileMap
	Spawn   mgl32.Vec2
}

// levelDoc is the YAML shape of a level file.
type levelDoc struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	Tiles  []struct {
		Name     string     `yaml:"name"`
		UV       [4]float32 `yaml:"uv"`
		Collider *struct {
			X      float32 `yaml:"x"`
			Y      float32 `yaml:"y"`
			Width  float32 `yaml:"width"`
			Height float32 `yaml:"height"`
		} `yaml:"collider"`
	} `yaml:"tiles"`
	Cells []struct {
		X    uint32 `yaml:"x"`
		Y    uint32 `yaml:"y"`
		Tile string `yaml:"tile"`
	} `yaml:"cells"`
	Spawn [2]float32 `yaml:"spawn"`
}

// LoadLevel reads a YAML level document and constructs the tile map. The
// document names a tile palette, then places palette entries into cells;
// tiles placed many times share one palette entry (and its sprite region).
func LoadLevel(r io.Reader) (*Level, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lunar: read level: %w", err)
	}

	var doc levelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("lunar: parse level: %w", err)
	}

	if doc.Width == 0 || doc.Height == 0 {
		return nil, fmt.Errorf("lunar: invalid level dimensions: %dx%d", doc.Width, doc.Height)
	}

	palette := make(map[string]*Tile, len(doc.Tiles))
	for _, entry := range doc.Tiles {
		if entry.Name == "" {
			return nil, fmt.Errorf("lunar: palette entry with empty name")
		}
		if _, ok := palette[entry.Name]; ok {
			return nil, fmt.Errorf("lunar: duplicate palette entry %q", entry.Name)
		}
		tile := NewTileWithUV(entry.Name, entry.UV[0], entry.UV[1], entry.UV[2], entry.UV[3])
		if c := entry.Collider; c != nil {
			tile.Collider = &Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
		}
		palette[entry.Name] = tile
	}

	tm := NewTileMap(doc.Width, doc.Height)
	for _, cell := range doc.Cells {
		if cell.X >= doc.Width || cell.Y >= doc.Height {
			return nil, fmt.Errorf("lunar: cell (%d,%d) outside %dx%d map",
				cell.X, cell.Y, doc.Width, doc.Height)
		}
		tile, ok := palette[cell.Tile]
		if !ok {
			return nil, fmt.Errorf("lunar: cell (%d,%d) references unknown tile %q",
				cell.X, cell.Y, cell.Tile)
		}
		tm.SetTile(cell.X, cell.Y, tile)
	}

	return &Level{
		TileMap: tm,
		Spawn:   mgl32.Vec2{doc.Spawn[0], doc.Spawn[1]},
	}, nil
}

// LoadLevelFile loads a level document from a file at path.
func LoadLevelFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lunar: open level: %w", err)
	}
	defer f.Close()
	return LoadLevel(f)
}
