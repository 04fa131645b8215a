package registry

import (
	"slices"

	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/entity"
)

// ProximityThreshold is the centre distance at which two objects are told
// about each other.
const ProximityThreshold = 80.0

// ObjectManager owns moving and animated objects such as the patrol dog
// and flower patches. Insertion order is query order.
type ObjectManager struct {
	seq     *entity.Sequence
	objects []entity.Dynamic
}

// NewObjectManager creates an empty manager drawing IDs from seq.
func NewObjectManager(seq *entity.Sequence) *ObjectManager {
	if seq == nil {
		seq = &entity.Sequence{}
	}
	return &ObjectManager{seq: seq}
}

// Add stores obj and assigns it an ID. Nil objects are ignored.
func (m *ObjectManager) Add(obj entity.Dynamic) entity.ID {
	if obj == nil {
		return entity.NilID
	}
	obj.AssignID(m.seq.Next())
	m.objects = append(m.objects, obj)
	return obj.ID()
}

// Remove deletes the object with the given ID. It reports whether one existed.
func (m *ObjectManager) Remove(id entity.ID) bool {
	before := len(m.objects)
	m.objects = slices.DeleteFunc(m.objects, func(o entity.Dynamic) bool { return o.ID() == id })
	return len(m.objects) != before
}

// Clear removes every object.
func (m *ObjectManager) Clear() { m.objects = nil }

// Len returns the number of objects.
func (m *ObjectManager) Len() int { return len(m.objects) }

// Objects returns the objects in insertion order.
func (m *ObjectManager) Objects() []entity.Dynamic { return slices.Clone(m.objects) }

// Lookup resolves an ID; ok is false if the object is gone.
func (m *ObjectManager) Lookup(id entity.ID) (entity.Interactable, bool) {
	for _, o := range m.objects {
		if o.ID() == id {
			return o, true
		}
	}
	return nil, false
}

// UpdateAll advances every object with dt only, then runs the proximity pass.
func (m *ObjectManager) UpdateAll(dt float64) {
	for _, o := range m.objects {
		o.Update(dt)
	}
	m.proximityPass()
}

// UpdateWithPlayer advances every object, handing the player's centre to
// objects that ask for it, then runs the proximity pass.
func (m *ObjectManager) UpdateWithPlayer(dt float64, player core.Point) {
	for _, o := range m.objects {
		if pa, ok := o.(entity.PlayerAware); ok && pa.WantsPlayerPosition() {
			pa.UpdateWithPlayer(dt, player)
			continue
		}
		o.Update(dt)
	}
	m.proximityPass()
}

// proximityPass compares every pair once. Quadratic in the object count,
// which stays in the tens.
func (m *ObjectManager) proximityPass() {
	for i := 0; i < len(m.objects); i++ {
		for j := i + 1; j < len(m.objects); j++ {
			a, b := m.objects[i], m.objects[j]
			if a.Bounds().CenterPoint().Dist(b.Bounds().CenterPoint()) > ProximityThreshold {
				continue
			}
			if pa, ok := a.(entity.ProximityAware); ok {
				pa.OnProximity(b)
			}
			if pb, ok := b.(entity.ProximityAware); ok {
				pb.OnProximity(a)
			}
		}
	}
}

// RenderAll draws every object.
func (m *ObjectManager) RenderAll(c core.Canvas, camera core.Point) {
	for _, o := range m.objects {
		o.Render(c, camera)
	}
}

// CheckCollisionWithAny reports whether box overlaps an object footprint.
func (m *ObjectManager) CheckCollisionWithAny(box core.Rect) bool {
	return collides(m.objects, box)
}

// FindInteractableNear returns the first object in range of a player
// centred at pos. radius <= 0 uses each object's own radius.
func (m *ObjectManager) FindInteractableNear(pos core.Point, radius float64) (entity.Interactable, bool) {
	return findNear(m.objects, pos, radius)
}

// Nearest returns the object closest to pos, strictly within maxDistance.
func (m *ObjectManager) Nearest(pos core.Point, maxDistance float64) (entity.Interactable, float64, bool) {
	return nearest(m.objects, pos, maxDistance)
}

// GetNearestObject is Nearest without the distance.
func (m *ObjectManager) GetNearestObject(pos core.Point, maxDistance float64) (entity.Interactable, bool) {
	e, _, ok := m.Nearest(pos, maxDistance)
	return e, ok
}

// ObjectsInRange returns every object whose centre is within r of pos.
func (m *ObjectManager) ObjectsInRange(pos core.Point, r float64) []entity.Interactable {
	var out []entity.Interactable
	for _, o := range m.objects {
		if o.Bounds().CenterPoint().Dist(pos) <= r {
			out = append(out, o)
		}
	}
	return out
}
