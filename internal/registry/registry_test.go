package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/entity"
)

func TestBuiltinArchetypes(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("expected built-in archetypes, got %v", list)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
	for _, id := range []string{ArchetypeDog, ArchetypeFlowers} {
		if !Exists(id) {
			t.Errorf("archetype %q not registered", id)
		}
	}
	if Exists("cat") {
		t.Error("Exists(cat) should be false")
	}
}

func TestCreateDog(t *testing.T) {
	e, err := Create(ArchetypeDog, Params{
		Position:    core.Pt(512, 818),
		PatrolWidth: 300,
		MinX:        128,
		MaxX:        1152,
	})
	if err != nil {
		t.Fatalf("Create(dog): %v", err)
	}
	d, ok := e.(*entity.Dog)
	if !ok {
		t.Fatalf("Create(dog) returned %T", e)
	}
	if lo, hi := d.Patrol(); lo != 362 || hi != 662 {
		t.Errorf("Patrol() = [%v, %v]", lo, hi)
	}
	if d.Speed() != entity.DogSpeed {
		t.Errorf("Speed() = %v", d.Speed())
	}

	if _, err := Create(ArchetypeDog, Params{PatrolWidth: -1}); err == nil {
		t.Error("negative patrol width should fail")
	}
}

func TestCreateFlowers(t *testing.T) {
	e, err := Create(ArchetypeFlowers, Params{
		Position: core.Pt(803, 291),
		Variant:  "farm",
		Lines:    []string{"These lovely flowers brighten up the farm area."},
		Radius:   40,
	})
	if err != nil {
		t.Fatalf("Create(flowers): %v", err)
	}
	if e.Kind() != entity.KindFarmFlowers || e.InteractionRadius() != 40 {
		t.Errorf("kind=%v radius=%v", e.Kind(), e.InteractionRadius())
	}

	_, err = Create(ArchetypeFlowers, Params{Variant: "tulip"})
	if err == nil || !strings.Contains(err.Error(), "flowers") {
		t.Errorf("bad variant error = %v", err)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("unicorn", Params{}); err == nil {
		t.Error("Create(unicorn) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate archetype should panic")
		}
	}()
	Register(ArchetypeDog, "Another Dog", newDog)
}

func TestNPCManager(t *testing.T) {
	var seq entity.Sequence
	m := NewNPCManager(&seq)
	breeder := m.AddNPC("breeder", core.Pt(160, 800), []string{"Hello there, traveler!"})
	fisher := m.AddNPC("fisher", core.Pt(544, 160), []string{"Good day, friend!"})

	if m.Len() != 2 || breeder.ID() == fisher.ID() {
		t.Fatalf("Len()=%d ids %d/%d", m.Len(), breeder.ID(), fisher.ID())
	}
	if n, ok := m.GetNPC("fisher"); !ok || n != fisher {
		t.Error("GetNPC(fisher) failed")
	}
	if _, ok := m.GetNPC("miller"); ok {
		t.Error("GetNPC(miller) should miss")
	}

	// Player box right on top of the breeder.
	if !m.CheckCollisionWithAny(core.NewRect(170, 810, 32, 32)) {
		t.Error("overlapping box should collide")
	}
	if m.CheckCollisionWithAny(core.NewRect(192, 800, 32, 32)) {
		t.Error("touching edges should not collide")
	}

	if e, ok := m.FindInteractableNear(core.Pt(560, 176), 0); !ok || e.ID() != fisher.ID() {
		t.Errorf("FindInteractableNear = %v, %v", e, ok)
	}

	if !m.Remove(breeder.ID()) || m.Remove(breeder.ID()) {
		t.Error("Remove should succeed exactly once")
	}
	if _, ok := m.Lookup(breeder.ID()); ok {
		t.Error("removed NPC should not resolve")
	}
	m.Clear()
	if m.Len() != 0 {
		t.Error("Clear should empty the manager")
	}
}

func TestFindInteractableNearRadius(t *testing.T) {
	m := NewNPCManager(nil)
	n := m.AddNPC("fisher", core.Pt(0, 0), nil) // centre (16,16), radius 56

	tests := []struct {
		name   string
		pos    core.Point
		radius float64
		want   bool
	}{
		{"own radius inside", core.Pt(60, 16), 0, true},
		{"own radius outside", core.Pt(80, 16), 0, false},
		{"override smaller", core.Pt(60, 16), 10, false},
		{"override larger", core.Pt(100, 16), 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := m.FindInteractableNear(tt.pos, tt.radius)
			if ok != tt.want {
				t.Errorf("FindInteractableNear(%v, %v) = %v", tt.pos, tt.radius, ok)
			}
		})
	}

	n.SetInteractable(false)
	if _, ok := m.FindInteractableNear(core.Pt(16, 16), 0); ok {
		t.Error("disabled NPCs are not interactable")
	}
}

// recorder counts updates and proximity events.
type recorder struct {
	*entity.Object
	updates     int
	playerCalls int
	wantsPlayer bool
	near        []entity.ID
}

func newRecorder(x, y float64, wantsPlayer bool) *recorder {
	return &recorder{Object: entity.NewObject(core.Pt(x, y), entity.KindGarden, nil), wantsPlayer: wantsPlayer}
}

func (r *recorder) Update(dt float64) { r.updates++ }
func (r *recorder) WantsPlayerPosition() bool { return r.wantsPlayer }
func (r *recorder) UpdateWithPlayer(dt float64, _ core.Point) { r.playerCalls++ }
func (r *recorder) OnProximity(other entity.Interactable) { r.near = append(r.near, other.ID()) }

func TestUpdateWithPlayerCapability(t *testing.T) {
	m := NewObjectManager(nil)
	plain := newRecorder(0, 0, false)
	aware := newRecorder(500, 500, true)
	m.Add(plain)
	m.Add(aware)

	m.UpdateWithPlayer(0.016, core.Pt(10, 10))
	if plain.updates != 1 || plain.playerCalls != 0 {
		t.Errorf("plain object: updates=%d playerCalls=%d", plain.updates, plain.playerCalls)
	}
	if aware.updates != 0 || aware.playerCalls != 1 {
		t.Errorf("aware object: updates=%d playerCalls=%d", aware.updates, aware.playerCalls)
	}

	m.UpdateAll(0.016)
	if aware.updates != 1 {
		t.Error("UpdateAll should use plain Update for everyone")
	}
}

func TestProximityPass(t *testing.T) {
	m := NewObjectManager(nil)
	a := newRecorder(0, 0, false)
	b := newRecorder(50, 0, false)  // 50 px from a
	c := newRecorder(500, 0, false) // far from both
	m.Add(a)
	m.Add(b)
	m.Add(c)

	m.UpdateAll(0.016)
	if len(a.near) != 1 || a.near[0] != b.ID() {
		t.Errorf("a saw %v", a.near)
	}
	if len(b.near) != 1 || b.near[0] != a.ID() {
		t.Errorf("b saw %v", b.near)
	}
	if len(c.near) != 0 {
		t.Errorf("c saw %v", c.near)
	}
}

func TestDogSniffsThroughManager(t *testing.T) {
	var seq entity.Sequence
	m := NewObjectManager(&seq)
	dog := entity.NewDog(core.Pt(552, 700), 400, 700, 0)
	patch := entity.NewFlowerPatch(core.Pt(552, 680), entity.FlowersGarden, nil)
	m.Add(dog)
	m.Add(patch)

	m.UpdateWithPlayer(0.016, core.Pt(100, 100))
	if id, ok := dog.Sniffing(); !ok || id != patch.ID() {
		t.Errorf("Sniffing() = %d, %v", id, ok)
	}
}

func TestObjectQueries(t *testing.T) {
	m := NewObjectManager(nil)
	near := entity.NewFlowerPatch(core.Pt(100, 100), entity.FlowersGarden, nil)
	far := entity.NewFlowerPatch(core.Pt(400, 100), entity.FlowersFarm, nil)
	m.Add(near)
	m.Add(far)
	if m.Add(nil) != entity.NilID || m.Len() != 2 {
		t.Error("nil objects should be ignored")
	}

	if e, ok := m.GetNearestObject(core.Pt(150, 117), 500); !ok || e.ID() != near.ID() {
		t.Errorf("GetNearestObject = %v, %v", e, ok)
	}
	if _, ok := m.GetNearestObject(core.Pt(150, 117), 10); ok {
		t.Error("nothing within 10 px")
	}

	if got := m.ObjectsInRange(core.Pt(117, 117), 50); len(got) != 1 {
		t.Errorf("ObjectsInRange = %d objects", len(got))
	}
	if got := m.ObjectsInRange(core.Pt(250, 117), 500); len(got) != 2 {
		t.Errorf("ObjectsInRange = %d objects", len(got))
	}

	// Footprint is 24x16 at the top-left, not the full 35x35 patch.
	if !m.CheckCollisionWithAny(core.NewRect(110, 105, 32, 32)) {
		t.Error("box over the footprint should collide")
	}
	if m.CheckCollisionWithAny(core.NewRect(100, 120, 32, 32)) {
		t.Error("box below the footprint should pass")
	}
}

func TestDirectory(t *testing.T) {
	var seq entity.Sequence
	npcs := NewNPCManager(&seq)
	objects := NewObjectManager(&seq)
	n := npcs.AddNPC("breeder", core.Pt(0, 0), nil)
	f := entity.NewFlowerPatch(core.Pt(0, 0), entity.FlowersGarden, nil)
	objects.Add(f)

	dir := Directory{NPCs: npcs, Objects: objects}
	if e, ok := dir.Lookup(n.ID()); !ok || e.Kind() != entity.KindNPC {
		t.Error("Lookup(npc) failed")
	}
	if e, ok := dir.Lookup(f.ID()); !ok || e.Kind() != entity.KindGardenFlower {
		t.Error("Lookup(flowers) failed")
	}
	if _, ok := dir.Lookup(entity.NilID); ok {
		t.Error("NilID never resolves")
	}
	objects.Remove(f.ID())
	if _, ok := dir.Lookup(f.ID()); ok {
		t.Error("removed object should not resolve")
	}
}
