package homestead

import (
	"github.com/vovakirdan/tui-homestead/internal/collision"
	"github.com/vovakirdan/tui-homestead/internal/core"
)

// PlayerGlyph marks the player on screen.
const PlayerGlyph = '@'

// Player is the avatar. Position is the top-left corner of its box.
type Player struct {
	pos   core.Point
	vel   core.Point
	speed float64
}

// NewPlayer places a player at start walking at speed pixels per second.
func NewPlayer(start core.Point, speed float64) *Player {
	return &Player{pos: start, speed: speed}
}

// HandleInput sets the velocity from held movement actions.
// Opposite directions cancel out.
func (p *Player) HandleInput(in core.Input) {
	p.vel = core.Point{}
	if in.IsActionHeld(core.ActionMoveLeft) {
		p.vel.X -= p.speed
	}
	if in.IsActionHeld(core.ActionMoveRight) {
		p.vel.X += p.speed
	}
	if in.IsActionHeld(core.ActionMoveUp) {
		p.vel.Y -= p.speed
	}
	if in.IsActionHeld(core.ActionMoveDown) {
		p.vel.Y += p.speed
	}
}

// Proposed returns where the player would be after dt seconds.
func (p *Player) Proposed(dt float64) core.Point {
	return p.pos.Add(p.vel.Scale(dt))
}

// MoveTo commits a position accepted by the collision resolver.
func (p *Player) MoveTo(pos core.Point) { p.pos = pos }

// Position returns the top-left corner.
func (p *Player) Position() core.Point { return p.pos }

// Speed returns the walking speed.
func (p *Player) Speed() float64 { return p.speed }

// Bounds returns the collision box.
func (p *Player) Bounds() core.Rect { return collision.PlayerRect(p.pos) }

// Center returns the centre of the collision box.
func (p *Player) Center() core.Point { return p.Bounds().CenterPoint() }

// Render draws the player.
func (p *Player) Render(c core.Canvas, camera core.Point) {
	c.DrawRect(p.Bounds(), camera, core.ColorBrightGreen, PlayerGlyph)
}
