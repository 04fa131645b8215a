package render

import (
	"github.com/vovakirdan/tui-homestead/internal/config"
	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/entity"
)

// Style is how a kind of ground looks on screen.
type Style struct {
	Glyph rune
	Color core.Color
}

var (
	grassStyle    = Style{'.', core.ColorGreen}
	waterStyle    = Style{'~', core.ColorBlue}
	obstacleStyle = Style{'#', core.ColorRed}
	bushStyle     = Style{'♣', core.ColorDarkGreen}
)

var zoneStyles = map[entity.Kind]Style{
	entity.KindHouse:        {'▒', core.ColorRed},
	entity.KindFarm:         {'=', core.ColorBrown},
	entity.KindFarmFlowers:  {'░', core.ColorDarkGreen},
	entity.KindGarden:       {'"', core.ColorBrightGreen},
	entity.KindGardenFlower: {'"', core.ColorBrightGreen},
	entity.KindGardenBush:   bushStyle,
	entity.KindWater:        waterStyle,
}

// ZoneStyle returns the ground style for a zone kind.
func ZoneStyle(kind entity.Kind) Style {
	if s, ok := zoneStyles[kind]; ok {
		return s
	}
	return grassStyle
}

// PaintWorld draws the static ground: grass, the water ring, zones, bushes
// and blocking structures, in that order.
func PaintWorld(c core.Canvas, camera core.Point, grid config.GridConfig, zones []*entity.Zone, obstacles []core.Rect) {
	c.DrawRect(grid.Bounds(), camera, grassStyle.Color, grassStyle.Glyph)

	for _, tile := range grid.WaterTiles() {
		c.DrawRect(tile, camera, waterStyle.Color, waterStyle.Glyph)
	}

	for _, z := range zones {
		s := ZoneStyle(z.Kind())
		c.DrawRect(z.Bounds(), camera, s.Color, s.Glyph)
	}

	for _, z := range zones {
		if z.Kind() == entity.KindGarden || z.Kind() == entity.KindGardenFlower {
			for _, b := range Bushes(z.Bounds(), grid.TileSize) {
				c.DrawRect(b, camera, bushStyle.Color, bushStyle.Glyph)
			}
		}
	}

	for _, o := range obstacles {
		c.DrawRect(o, camera, obstacleStyle.Color, obstacleStyle.Glyph)
	}
}

// Bushes returns the decorative bush rectangles inside a garden area:
// one per tile whose column plus row is one more than a multiple of three.
func Bushes(area core.Rect, tileSize int) []core.Rect {
	if tileSize <= 0 {
		return nil
	}
	var out []core.Rect
	for y := area.Y / tileSize; y*tileSize < area.Bottom(); y++ {
		for x := area.X / tileSize; x*tileSize < area.Right(); x++ {
			if (x+y)%3 == 1 {
				out = append(out, core.NewRect(x*tileSize+40, y*tileSize+40, 40, 30))
			}
		}
	}
	return out
}
