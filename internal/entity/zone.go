package entity

import (
	"slices"

	"github.com/vovakirdan/tui-homestead/internal/core"
)

// Zone is a static interaction area painted into the world, like the house
// door or the farm. Only its dialogue cursor ever changes.
type Zone struct {
	bounds core.Rect
	kind   Kind
	lines  []string
	cursor int
}

// NewZone creates a zone covering bounds.
func NewZone(bounds core.Rect, kind Kind, lines []string) *Zone {
	return &Zone{bounds: bounds, kind: kind, lines: slices.Clone(lines)}
}

// Bounds returns the area in world pixels.
func (z *Zone) Bounds() core.Rect { return z.bounds }

// Kind returns what the zone represents.
func (z *Zone) Kind() Kind { return z.kind }

// DialogueLines returns a copy of the zone's lines.
func (z *Zone) DialogueLines() []string { return slices.Clone(z.lines) }

// CurrentLine returns the line under the cursor.
func (z *Zone) CurrentLine() (string, bool) { return lineAt(z.lines, &z.cursor) }

// Advance moves to the next line, wrapping at the end.
func (z *Zone) Advance() { advance(z.lines, &z.cursor) }

// Cursor returns the index of the current line.
func (z *Zone) Cursor() int { return z.cursor }

// LineCount returns the number of lines.
func (z *Zone) LineCount() int { return len(z.lines) }
