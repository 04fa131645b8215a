package entity

import (
	"slices"

	"github.com/vovakirdan/tui-homestead/internal/core"
)

// Default body and reach for generic objects.
const (
	DefaultObjectWidth  = 24
	DefaultObjectHeight = 16
	DefaultRadius       = 50.0
)

// Object is the shared state of every dynamic interactable. Concrete
// entities embed it and override Update and Render.
type Object struct {
	id           ID
	pos          core.Point
	w, h         int
	fw, fh       int
	kind         Kind
	lines        []string
	cursor       int
	interactable bool
	radius       float64
	onProximity  func(other Interactable)
}

// NewObject creates an interactable object at pos with a default-sized body.
func NewObject(pos core.Point, kind Kind, lines []string) *Object {
	return &Object{
		pos:          pos,
		w:            DefaultObjectWidth,
		h:            DefaultObjectHeight,
		fw:           DefaultObjectWidth,
		fh:           DefaultObjectHeight,
		kind:         kind,
		lines:        slices.Clone(lines),
		interactable: true,
		radius:       DefaultRadius,
	}
}

// ID returns the registry handle, or NilID before registration.
func (o *Object) ID() ID { return o.id }

// AssignID is called once by the owning registry.
func (o *Object) AssignID(id ID) { o.id = id }

// Kind returns the interaction kind.
func (o *Object) Kind() Kind { return o.kind }

// Position returns the top-left corner of the body.
func (o *Object) Position() core.Point { return o.pos }

// SetPosition moves the object.
func (o *Object) SetPosition(p core.Point) { o.pos = p }

// Size returns the body size in pixels.
func (o *Object) Size() (w, h int) { return o.w, o.h }

// SetSize changes the body size. Negative values are treated as zero.
func (o *Object) SetSize(w, h int) {
	o.w, o.h = core.Max(w, 0), core.Max(h, 0)
}

// Bounds returns the solid body.
func (o *Object) Bounds() core.Rect {
	return core.RectAt(o.pos, o.w, o.h)
}

// CollisionBounds returns the footprint that blocks the player. It shares
// the body's top-left corner but may be smaller than the drawn body.
func (o *Object) CollisionBounds() core.Rect {
	return core.RectAt(o.pos, o.fw, o.fh)
}

// SetFootprint changes the collision footprint size.
func (o *Object) SetFootprint(w, h int) {
	o.fw, o.fh = core.Max(w, 0), core.Max(h, 0)
}

// Center returns the centre of the body.
func (o *Object) Center() core.Point {
	return core.Point{X: o.pos.X + float64(o.w)/2, Y: o.pos.Y + float64(o.h)/2}
}

// InteractionRadius returns the reach measured from the body centre.
func (o *Object) InteractionRadius() float64 { return o.radius }

// SetInteractionRadius changes the reach; negative values disable range.
func (o *Object) SetInteractionRadius(r float64) { o.radius = r }

// InteractionBounds returns the square around the interaction circle.
func (o *Object) InteractionBounds() core.Rect {
	c := o.Center()
	r := int(o.radius)
	return core.NewRect(int(c.X)-r, int(c.Y)-r, 2*r, 2*r)
}

// InRange reports whether a player centred at p is within the radius.
func (o *Object) InRange(p core.Point) bool {
	if o.radius < 0 {
		return false
	}
	return o.Center().Dist(p) <= o.radius
}

// Interactable reports whether the object accepts interaction.
func (o *Object) Interactable() bool { return o.interactable }

// SetInteractable enables or disables interaction.
func (o *Object) SetInteractable(v bool) { o.interactable = v }

// DialogueLines returns a copy of the dialogue.
func (o *Object) DialogueLines() []string { return slices.Clone(o.lines) }

// SetDialogue replaces the dialogue, clamping the cursor into range.
func (o *Object) SetDialogue(lines []string) {
	o.lines = slices.Clone(lines)
	if o.cursor >= len(o.lines) {
		o.cursor = 0
	}
}

// CurrentLine returns the line under the cursor.
func (o *Object) CurrentLine() (string, bool) {
	return lineAt(o.lines, &o.cursor)
}

// Advance moves to the next line, wrapping at the end.
func (o *Object) Advance() {
	advance(o.lines, &o.cursor)
}

// Cursor returns the index of the current line.
func (o *Object) Cursor() int { return o.cursor }

// LineCount returns the number of dialogue lines.
func (o *Object) LineCount() int { return len(o.lines) }

// SetProximityHandler installs a callback for nearby entities.
func (o *Object) SetProximityHandler(fn func(other Interactable)) {
	o.onProximity = fn
}

// OnProximity forwards to the installed handler, if any.
func (o *Object) OnProximity(other Interactable) {
	if o.onProximity != nil {
		o.onProximity(other)
	}
}

// Update does nothing for plain objects.
func (o *Object) Update(dt float64) {}

// Render draws the body as a plain block.
func (o *Object) Render(c core.Canvas, camera core.Point) {
	c.DrawRect(o.Bounds(), camera, core.ColorGray, '▪')
}

// lineAt returns lines[*cursor], pulling an out-of-range cursor back to 0.
func lineAt(lines []string, cursor *int) (string, bool) {
	if len(lines) == 0 {
		return "", false
	}
	if *cursor < 0 || *cursor >= len(lines) {
		*cursor = 0
	}
	return lines[*cursor], true
}

func advance(lines []string, cursor *int) {
	if len(lines) == 0 {
		return
	}
	*cursor = (*cursor + 1) % len(lines)
}
