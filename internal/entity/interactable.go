// Package entity defines everything the player can stand next to and talk to:
// stationary NPCs, moving objects such as the patrol dog and flower patches,
// and the static interaction zones painted into the world.
package entity

import "github.com/vovakirdan/tui-homestead/internal/core"

// ID is a handle for an entity owned by a registry. Holders of an ID must
// resolve it through the owning registry before use; the entity may be gone.
type ID uint64

// NilID is the zero handle; no entity ever has it.
const NilID ID = 0

// Sequence hands out unique IDs. Registries that share a Sequence never
// produce colliding handles.
type Sequence struct {
	next ID
}

// Next returns a fresh ID.
func (s *Sequence) Next() ID {
	s.next++
	return s.next
}

// Speaker owns an ordered list of dialogue lines and a cursor into it.
// The cursor survives between conversations.
type Speaker interface {
	// CurrentLine returns the line under the cursor; ok is false when there
	// are no lines.
	CurrentLine() (line string, ok bool)
	// Advance moves the cursor to the next line, wrapping around.
	// It is a no-op when there are no lines.
	Advance()
	Cursor() int
	LineCount() int
}

// Interactable is anything the player can be near and open a dialogue with.
type Interactable interface {
	Speaker

	ID() ID
	Kind() Kind
	// Position is the top-left corner of the body in world pixels.
	Position() core.Point
	// Bounds is the solid body used for collision.
	Bounds() core.Rect
	InteractionRadius() float64
	// InteractionBounds is the square circumscribing the interaction circle.
	InteractionBounds() core.Rect
	DialogueLines() []string
	// InRange reports whether a player centred at p can interact.
	InRange(p core.Point) bool
	// Interactable reports whether the entity currently accepts interaction.
	Interactable() bool
}

// Dynamic is an interactable owned and driven by a registry.
type Dynamic interface {
	Interactable

	AssignID(id ID)
	// CollisionBounds is the footprint the player cannot walk into.
	CollisionBounds() core.Rect
	Update(dt float64)
	Render(c core.Canvas, camera core.Point)
}

// PlayerAware entities want the player's position during updates.
// Registries check the capability instead of the concrete type.
type PlayerAware interface {
	WantsPlayerPosition() bool
	UpdateWithPlayer(dt float64, player core.Point)
}

// ProximityAware entities are told about other entities close to them.
type ProximityAware interface {
	OnProximity(other Interactable)
}
