// Package render turns world geometry into terminal cells. The world talks
// in pixels; a Projector maps them onto a character grid where one cell
// covers CellW x CellH pixels.
package render

import (
	"math"

	"github.com/vovakirdan/tui-homestead/internal/core"
)

// Default cell size in world pixels. Terminal cells are about twice as tall
// as they are wide, so the world keeps its proportions on screen.
const (
	DefaultCellW = 16
	DefaultCellH = 32
)

// Projector implements core.Canvas over a core.Screen.
type Projector struct {
	screen       *core.Screen
	cellW, cellH int
}

var _ core.Canvas = (*Projector)(nil)

// NewProjector wraps screen. Non-positive cell sizes select the defaults.
func NewProjector(screen *core.Screen, cellW, cellH int) *Projector {
	if cellW <= 0 {
		cellW = DefaultCellW
	}
	if cellH <= 0 {
		cellH = DefaultCellH
	}
	return &Projector{screen: screen, cellW: cellW, cellH: cellH}
}

// Screen returns the target buffer.
func (p *Projector) Screen() *core.Screen { return p.screen }

// ViewportPixels returns the visible world area in pixels.
func (p *Projector) ViewportPixels() (w, h int) {
	return p.screen.Width() * p.cellW, p.screen.Height() * p.cellH
}

// Size reports the canvas size in cells.
func (p *Projector) Size() (w, h int) {
	return p.screen.Width(), p.screen.Height()
}

// ToCell maps a world point to the cell containing it.
func (p *Projector) ToCell(world, camera core.Point) (x, y int) {
	rel := world.Sub(camera)
	x = int(math.Floor(rel.X / float64(p.cellW)))
	y = int(math.Floor(rel.Y / float64(p.cellH)))
	return x, y
}

// CellRect returns the cells covered by a world rectangle. Any non-empty
// rectangle covers at least one cell.
func (p *Projector) CellRect(world core.Rect, camera core.Point) core.Rect {
	if world.W == 0 || world.H == 0 {
		return core.Rect{}
	}
	corner := core.Pt(float64(world.X), float64(world.Y))
	x0, y0 := p.ToCell(corner, camera)
	rel := corner.Sub(camera)
	x1 := int(math.Ceil((rel.X + float64(world.W)) / float64(p.cellW)))
	y1 := int(math.Ceil((rel.Y + float64(world.H)) / float64(p.cellH)))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// DrawRect fills the cells covered by a world rectangle.
func (p *Projector) DrawRect(world core.Rect, camera core.Point, c core.Color, fill rune) {
	r := p.CellRect(world, camera)
	if r.W == 0 {
		return
	}
	p.screen.DrawRect(r, fill, c)
}

// DrawRectScreen fills a rectangle given in cells.
func (p *Projector) DrawRectScreen(r core.Rect, c core.Color, fill rune) {
	p.screen.DrawRect(r, fill, c)
}

// DrawBoxScreen outlines a rectangle given in cells.
func (p *Projector) DrawBoxScreen(r core.Rect, c core.Color) {
	p.screen.DrawBox(r, c)
}

// RenderText writes one line of text at a cell position.
func (p *Projector) RenderText(text string, x, y int, c core.Color) {
	p.screen.DrawText(x, y, text, c)
}

// RenderWrappedText writes text wrapped to width cells and returns the
// number of lines written.
func (p *Projector) RenderWrappedText(text string, x, y, width int, c core.Color) int {
	lines := Wrap(text, width)
	for i, line := range lines {
		p.screen.DrawText(x, y+i, line, c)
	}
	return len(lines)
}
