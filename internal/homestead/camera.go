package homestead

import "github.com/vovakirdan/tui-homestead/internal/core"

// Camera keeps the player centred in the viewport without showing space
// outside the world. All sizes are in world pixels.
type Camera struct {
	offset core.Point
	viewW  int
	viewH  int
	world  core.Rect
}

// NewCamera creates a camera over world.
func NewCamera(world core.Rect) *Camera {
	return &Camera{world: world}
}

// SetViewport changes the visible area.
func (c *Camera) SetViewport(w, h int) {
	c.viewW, c.viewH = core.Max(w, 0), core.Max(h, 0)
}

// Viewport returns the visible area size.
func (c *Camera) Viewport() (w, h int) { return c.viewW, c.viewH }

// Follow snaps the camera onto target. A world smaller than the viewport
// is centred instead.
func (c *Camera) Follow(target core.Point) {
	c.offset.X = follow(target.X, c.viewW, c.world.X, c.world.W)
	c.offset.Y = follow(target.Y, c.viewH, c.world.Y, c.world.H)
}

func follow(target float64, view, worldStart, worldSize int) float64 {
	if worldSize <= view {
		return float64(worldStart) - float64(view-worldSize)/2
	}
	off := target - float64(view)/2
	return core.ClampF(off, float64(worldStart), float64(worldStart+worldSize-view))
}

// Offset returns the world position of the viewport's top-left corner.
func (c *Camera) Offset() core.Point { return c.offset }
