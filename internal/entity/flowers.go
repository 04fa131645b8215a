package entity

import (
	"fmt"

	"github.com/vovakirdan/tui-homestead/internal/core"
)

// FlowerVariant selects where a patch grows.
type FlowerVariant string

const (
	FlowersGarden FlowerVariant = "garden"
	FlowersFarm   FlowerVariant = "farm"
)

// ParseFlowerVariant validates a variant name from a world file.
func ParseFlowerVariant(s string) (FlowerVariant, error) {
	switch v := FlowerVariant(s); v {
	case FlowersGarden, FlowersFarm:
		return v, nil
	case "":
		return FlowersGarden, nil
	default:
		return "", fmt.Errorf("entity: unknown flower variant %q", s)
	}
}

// Kind maps the variant onto the interaction kind it answers to.
func (v FlowerVariant) Kind() Kind {
	if v == FlowersFarm {
		return KindFarmFlowers
	}
	return KindGardenFlower
}

// Flower patch defaults.
const (
	FlowerPatchSize   = 35
	FlowerPatchRadius = 36.0

	swayPeriod = 10.0
)

// FlowerPatch is a small decorative patch. It never moves; it only keeps
// a sway timer for rendering.
type FlowerPatch struct {
	*Object
	variant FlowerVariant
	sway    float64
}

// NewFlowerPatch plants a patch with its top-left corner at pos.
func NewFlowerPatch(pos core.Point, variant FlowerVariant, lines []string) *FlowerPatch {
	o := NewObject(pos, variant.Kind(), lines)
	o.SetSize(FlowerPatchSize, FlowerPatchSize)
	o.SetInteractionRadius(FlowerPatchRadius)
	return &FlowerPatch{Object: o, variant: variant}
}

// Variant returns the patch variant.
func (f *FlowerPatch) Variant() FlowerVariant { return f.variant }

// SwayTimer returns the animation phase in seconds, in [0, 10].
func (f *FlowerPatch) SwayTimer() float64 { return f.sway }

// Update advances the sway timer.
func (f *FlowerPatch) Update(dt float64) {
	f.sway += dt
	if f.sway > swayPeriod {
		f.sway = 0
	}
}

// Render alternates blossom colors with the sway phase.
func (f *FlowerPatch) Render(c core.Canvas, camera core.Point) {
	colors := []core.Color{core.ColorPink, core.ColorBrightMagenta, core.ColorYellow, core.ColorOrange}
	glyph := '*'
	if f.variant == FlowersFarm {
		colors = []core.Color{core.ColorPink, core.ColorYellow, core.ColorOrange}
		glyph = ','
	}
	c.DrawRect(f.Bounds(), camera, colors[int(f.sway*2)%len(colors)], glyph)
}
