package registry

import "github.com/vovakirdan/tui-homestead/internal/entity"

// Directory resolves IDs across both managers. IDs never collide when the
// managers share one entity.Sequence.
type Directory struct {
	NPCs    *NPCManager
	Objects *ObjectManager
}

// Lookup finds a live entity by ID.
func (d Directory) Lookup(id entity.ID) (entity.Interactable, bool) {
	if id == entity.NilID {
		return nil, false
	}
	if d.NPCs != nil {
		if e, ok := d.NPCs.Lookup(id); ok {
			return e, true
		}
	}
	if d.Objects != nil {
		if e, ok := d.Objects.Lookup(id); ok {
			return e, true
		}
	}
	return nil, false
}
