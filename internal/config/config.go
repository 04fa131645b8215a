// Package config provides YAML-based world configuration loading and
// pace presets for the homestead.
package config

import (
	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/entity"
)

// WorldConfig describes everything placed in the world at startup.
type WorldConfig struct {
	Name      string         `yaml:"name"`
	Grid      GridConfig     `yaml:"grid"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles []TileRect     `yaml:"obstacles"`
	Zones     []ZoneConfig   `yaml:"zones"`
	Margins   map[string]int `yaml:"margins"`
	NPCs      []NPCConfig    `yaml:"npcs"`
	Objects   []ObjectConfig `yaml:"objects"`
}

// GridConfig defines the tile grid. The outermost Border tiles are water.
type GridConfig struct {
	TileSize int `yaml:"tile_size"` // Pixels per tile side
	Width    int `yaml:"width"`     // Tiles
	Height   int `yaml:"height"`    // Tiles
	Border   int `yaml:"border"`    // Water ring thickness in tiles
}

// PlayerConfig defines where the player starts and how fast it walks.
type PlayerConfig struct {
	Start PointConfig `yaml:"start"` // Top-left corner in pixels
	Speed float64     `yaml:"speed"` // Pixels per second
}

// PointConfig is a position in world pixels.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TileRect is a rectangle measured in whole tiles.
type TileRect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// ZoneConfig is a static interaction zone.
type ZoneConfig struct {
	Kind  string   `yaml:"kind"`
	Area  TileRect `yaml:"area"`
	Lines []string `yaml:"lines"`
}

// NPCConfig is a named villager.
type NPCConfig struct {
	Name     string      `yaml:"name"`
	Position PointConfig `yaml:"position"`
	Radius   float64     `yaml:"radius,omitempty"`
	Lines    []string    `yaml:"lines"`
}

// ObjectConfig spawns a registered archetype.
type ObjectConfig struct {
	Archetype   string      `yaml:"archetype"`
	Position    PointConfig `yaml:"position"`
	Variant     string      `yaml:"variant,omitempty"`
	PatrolWidth float64     `yaml:"patrol_width,omitempty"`
	Speed       float64     `yaml:"speed,omitempty"`
	Radius      float64     `yaml:"radius,omitempty"`
	Lines       []string    `yaml:"lines,omitempty"`
}

// Point converts to a core.Point.
func (p PointConfig) Point() core.Point {
	return core.Pt(p.X, p.Y)
}

// Pixels converts the tile rectangle to world pixels.
func (r TileRect) Pixels(tileSize int) core.Rect {
	return core.NewRect(r.X*tileSize, r.Y*tileSize, r.W*tileSize, r.H*tileSize)
}

// Bounds returns the whole world in pixels.
func (g GridConfig) Bounds() core.Rect {
	return core.NewRect(0, 0, g.Width*g.TileSize, g.Height*g.TileSize)
}

// Interior returns the walkable area inside the water ring.
func (g GridConfig) Interior() core.Rect {
	return g.Bounds().Expand(-g.Border * g.TileSize)
}

// WaterTiles returns every tile rectangle of the water ring, in pixels.
func (g GridConfig) WaterTiles() []core.Rect {
	var tiles []core.Rect
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x < g.Border || y < g.Border || x >= g.Width-g.Border || y >= g.Height-g.Border {
				tiles = append(tiles, TileRect{X: x, Y: y, W: 1, H: 1}.Pixels(g.TileSize))
			}
		}
	}
	return tiles
}

// ObstacleRects returns the static blocking rectangles in pixels.
func (c WorldConfig) ObstacleRects() []core.Rect {
	rects := make([]core.Rect, 0, len(c.Obstacles))
	for _, o := range c.Obstacles {
		rects = append(rects, o.Pixels(c.Grid.TileSize))
	}
	return rects
}

// ZoneEntities builds the static zones in declaration order.
// Call Validate first; zones with unknown kinds are skipped.
func (c WorldConfig) ZoneEntities() []*entity.Zone {
	zones := make([]*entity.Zone, 0, len(c.Zones))
	for _, z := range c.Zones {
		kind, err := entity.ParseKind(z.Kind)
		if err != nil {
			continue
		}
		zones = append(zones, entity.NewZone(z.Area.Pixels(c.Grid.TileSize), kind, z.Lines))
	}
	return zones
}

// MarginsByKind converts the margin table to kinds.
// Call Validate first; unknown kinds are skipped.
func (c WorldConfig) MarginsByKind() map[entity.Kind]int {
	out := make(map[entity.Kind]int, len(c.Margins))
	for name, m := range c.Margins {
		if kind, err := entity.ParseKind(name); err == nil {
			out[kind] = m
		}
	}
	return out
}
