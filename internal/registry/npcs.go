package registry

import (
	"slices"

	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/entity"
)

// NPCManager owns the world's NPCs. Insertion order is query order.
type NPCManager struct {
	seq  *entity.Sequence
	npcs []*entity.NPC
}

// NewNPCManager creates an empty manager drawing IDs from seq.
func NewNPCManager(seq *entity.Sequence) *NPCManager {
	if seq == nil {
		seq = &entity.Sequence{}
	}
	return &NPCManager{seq: seq}
}

// AddNPC creates and stores a named NPC.
func (m *NPCManager) AddNPC(name string, pos core.Point, lines []string) *entity.NPC {
	n := entity.NewNPC(name, pos, lines)
	m.Add(n)
	return n
}

// Add stores n and assigns it an ID.
func (m *NPCManager) Add(n *entity.NPC) entity.ID {
	n.AssignID(m.seq.Next())
	m.npcs = append(m.npcs, n)
	return n.ID()
}

// Remove deletes the NPC with the given ID. It reports whether one existed.
func (m *NPCManager) Remove(id entity.ID) bool {
	before := len(m.npcs)
	m.npcs = slices.DeleteFunc(m.npcs, func(n *entity.NPC) bool { return n.ID() == id })
	return len(m.npcs) != before
}

// Clear removes every NPC.
func (m *NPCManager) Clear() { m.npcs = nil }

// Len returns the number of NPCs.
func (m *NPCManager) Len() int { return len(m.npcs) }

// NPCs returns the NPCs in insertion order.
func (m *NPCManager) NPCs() []*entity.NPC { return slices.Clone(m.npcs) }

// GetNPC finds an NPC by name.
func (m *NPCManager) GetNPC(name string) (*entity.NPC, bool) {
	for _, n := range m.npcs {
		if n.Name() == name {
			return n, true
		}
	}
	return nil, false
}

// Lookup resolves an ID; ok is false if the NPC is gone.
func (m *NPCManager) Lookup(id entity.ID) (entity.Interactable, bool) {
	for _, n := range m.npcs {
		if n.ID() == id {
			return n, true
		}
	}
	return nil, false
}

// UpdateAll advances every NPC.
func (m *NPCManager) UpdateAll(dt float64) {
	for _, n := range m.npcs {
		n.Update(dt)
	}
}

// RenderAll draws every NPC.
func (m *NPCManager) RenderAll(c core.Canvas, camera core.Point) {
	for _, n := range m.npcs {
		n.Render(c, camera)
	}
}

// CheckCollisionWithAny reports whether box overlaps an NPC footprint.
func (m *NPCManager) CheckCollisionWithAny(box core.Rect) bool {
	return collides(m.npcs, box)
}

// FindInteractableNear returns the first NPC in range of a player centred
// at pos. radius <= 0 uses each NPC's own radius.
func (m *NPCManager) FindInteractableNear(pos core.Point, radius float64) (entity.Interactable, bool) {
	return findNear(m.npcs, pos, radius)
}

// Nearest returns the NPC closest to pos, strictly within maxDistance.
func (m *NPCManager) Nearest(pos core.Point, maxDistance float64) (entity.Interactable, float64, bool) {
	return nearest(m.npcs, pos, maxDistance)
}
