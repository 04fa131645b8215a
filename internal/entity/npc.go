package entity

import (
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/tui-homestead/internal/core"
)

// NPC body size and reach.
const (
	NPCSize   = 32
	NPCRadius = 56.0
)

// NPC is a stationary villager identified by name.
type NPC struct {
	*Object
	name string
}

// NewNPC creates a named NPC whose top-left corner is at pos.
func NewNPC(name string, pos core.Point, lines []string) *NPC {
	o := NewObject(pos, KindNPC, lines)
	o.SetSize(NPCSize, NPCSize)
	o.SetFootprint(NPCSize, NPCSize)
	o.SetInteractionRadius(NPCRadius)
	return &NPC{Object: o, name: name}
}

// Name returns the lookup name.
func (n *NPC) Name() string { return n.name }

// Update is a no-op: NPCs stand still.
func (n *NPC) Update(dt float64) {}

// Render draws the NPC as a block filled with the first letter of its name.
func (n *NPC) Render(c core.Canvas, camera core.Point) {
	c.DrawRect(n.Bounds(), camera, core.ColorBrightBlue, n.Glyph())
}

// Glyph is the upper-cased first letter of the name, or 'N'.
func (n *NPC) Glyph() rune {
	r, _ := utf8.DecodeRuneInString(n.name)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return 'N'
	}
	return unicode.ToUpper(r)
}
