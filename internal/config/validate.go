package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-homestead/internal/entity"
	"github.com/vovakirdan/tui-homestead/internal/registry"
)

// playerBox matches the collision box; the interior must fit it.
const playerBox = 32

// Validate reports every problem in the configuration at once.
func (c WorldConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: "+format, args...))
	}

	g := c.Grid
	if g.TileSize <= 0 {
		add("grid: tile_size must be positive, got %d", g.TileSize)
	}
	if g.Width <= 0 || g.Height <= 0 {
		add("grid: size must be positive, got %dx%d", g.Width, g.Height)
	}
	if g.Border < 0 {
		add("grid: border must not be negative, got %d", g.Border)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	interior := g.Interior()
	if interior.W < playerBox || interior.H < playerBox {
		add("grid: walkable interior %dx%d px is smaller than the player", interior.W, interior.H)
	}
	if c.Player.Speed < 0 {
		add("player: speed must not be negative, got %v", c.Player.Speed)
	}

	for i, o := range c.Obstacles {
		if o.W < 0 || o.H < 0 {
			add("obstacles[%d]: negative size %dx%d", i, o.W, o.H)
		}
	}

	for i, z := range c.Zones {
		if _, err := entity.ParseKind(z.Kind); err != nil {
			add("zones[%d]: %w", i, err)
		}
		if z.Area.W < 0 || z.Area.H < 0 {
			add("zones[%d]: negative size %dx%d", i, z.Area.W, z.Area.H)
		}
	}

	for name := range c.Margins {
		if _, err := entity.ParseKind(name); err != nil {
			add("margins: %w", err)
		}
	}

	seen := make(map[string]bool, len(c.NPCs))
	for i, n := range c.NPCs {
		if n.Name == "" {
			add("npcs[%d]: name is required", i)
		} else if seen[n.Name] {
			add("npcs[%d]: duplicate name %q", i, n.Name)
		}
		seen[n.Name] = true
	}

	for i, o := range c.Objects {
		if !registry.Exists(o.Archetype) {
			add("objects[%d]: unknown archetype %q", i, o.Archetype)
		}
		if o.PatrolWidth < 0 || o.Speed < 0 || o.Radius < 0 {
			add("objects[%d]: patrol_width, speed and radius must not be negative", i)
		}
	}

	return errors.Join(errs...)
}
