package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/dialogue"
	"github.com/vovakirdan/tui-homestead/internal/entity"
)

// Dialogue box layout in cells.
const (
	boxMaxWidth = 60
	boxHeight   = 7
	dimAlpha    = 160
)

// DrawOverlay draws the interaction prompt or the dialogue box on top of
// the world.
func DrawOverlay(c core.Canvas, v dialogue.View) {
	if v.ShowBox {
		drawDialogueBox(c, v)
		return
	}
	if v.ShowPrompt {
		drawPrompt(c, v.Prompt)
	}
}

func drawPrompt(c core.Canvas, prompt string) {
	w, h := c.Size()
	boxW := runewidth.StringWidth(prompt) + 4
	if boxW > w || h < 3 {
		return
	}
	r := core.NewRect((w-boxW)/2, h-4, boxW, 3)
	c.DrawRectScreen(r, core.ColorDefault, ' ')
	c.DrawBoxScreen(r, core.ColorYellow)
	c.RenderText(prompt, r.X+2, r.Y+1, core.ColorBrightYellow)
}

func drawDialogueBox(c core.Canvas, v dialogue.View) {
	w, h := c.Size()
	boxW := core.Min(w-2, boxMaxWidth)
	if boxW < 10 || h < boxHeight {
		return
	}
	r := core.NewRect((w-boxW)/2, h-boxHeight-1, boxW, boxHeight)

	frame, text, hint := core.ColorBrightWhite, core.ColorWhite, core.ColorGray
	if v.Alpha < dimAlpha {
		frame, text, hint = frame.Dim(), text.Dim(), hint.Dim()
	}

	c.DrawRectScreen(r, core.ColorDefault, ' ')
	c.DrawBoxScreen(r, frame)
	if title := Title(v.Kind); title != "" {
		c.RenderText(" "+title+" ", r.X+2, r.Y, frame)
	}

	// Body rows sit between the frame and the hint row.
	lines := Wrap(v.Text, r.W-4)
	for i := 0; i < len(lines) && i < r.H-3; i++ {
		c.RenderText(lines[i], r.X+2, r.Y+1+i, text)
	}
	c.RenderText(strings.Join(v.Hints, "   "), r.X+2, r.Bottom()-2, hint)
}

// Title turns a kind into a box title, e.g. "Garden flower".
func Title(kind entity.Kind) string {
	if kind == entity.KindNone {
		return ""
	}
	name := strings.ReplaceAll(kind.String(), "_", " ")
	if kind == entity.KindNPC {
		return "NPC"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
