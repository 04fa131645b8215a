package registry

import (
	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/entity"
)

// findNear returns the first interactable entity in range of pos.
// radius <= 0 uses each entity's own InRange test.
func findNear[T entity.Interactable](items []T, pos core.Point, radius float64) (entity.Interactable, bool) {
	for _, e := range items {
		if !e.Interactable() {
			continue
		}
		if radius > 0 {
			if e.Bounds().CenterPoint().Dist(pos) <= radius {
				return e, true
			}
			continue
		}
		if e.InRange(pos) {
			return e, true
		}
	}
	return nil, false
}

// nearest returns the entity whose centre is closest to pos, strictly
// within maxDistance.
func nearest[T entity.Interactable](items []T, pos core.Point, maxDistance float64) (entity.Interactable, float64, bool) {
	var (
		best     entity.Interactable
		bestDist = maxDistance
	)
	for _, e := range items {
		if d := e.Bounds().CenterPoint().Dist(pos); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist, best != nil
}

// collides reports whether box overlaps any entity's collision footprint.
func collides[T interface{ CollisionBounds() core.Rect }](items []T, box core.Rect) bool {
	for _, e := range items {
		if box.Intersects(e.CollisionBounds()) {
			return true
		}
	}
	return false
}
