package dialogue

import (
	"testing"

	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/entity"
	"github.com/vovakirdan/tui-homestead/internal/proximity"
)

type mapDirectory map[entity.ID]entity.Interactable

func (d mapDirectory) Lookup(id entity.ID) (entity.Interactable, bool) {
	e, ok := d[id]
	return e, ok
}

type zoneList []*entity.Zone

func (z zoneList) ZoneOfKind(kind entity.Kind) (*entity.Zone, bool) {
	for _, zone := range z {
		if zone.Kind() == kind {
			return zone, true
		}
	}
	return nil, false
}

func press(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

var none = core.NewInputFrame()

var breederLines = []string{
	"Hello there, traveler!",
	"I'm the village breeder.",
	"I take care of the animals around here.",
}

func newBreeder() (*entity.NPC, mapDirectory) {
	var seq entity.Sequence
	npc := entity.NewNPC("breeder", core.Pt(160, 800), breederLines)
	npc.AssignID(seq.Next())
	return npc, mapDirectory{npc.ID(): npc}
}

func matchOf(e entity.Interactable) proximity.Match {
	return proximity.Match{Entity: e, Kind: e.Kind()}
}

func TestConversationWithNPC(t *testing.T) {
	npc, dir := newBreeder()
	m := NewMachine(dir, nil)
	match := matchOf(npc)

	m.Update(0.016, match, none)
	if m.State() != PromptVisible {
		t.Fatalf("state = %v, expected prompt", m.State())
	}

	m.Update(0.016, match, press(core.ActionInteract))
	if !m.Active() || m.Text() != breederLines[0] {
		t.Fatalf("after interact: state=%v text=%q", m.State(), m.Text())
	}
	if m.Speaker() != npc.ID() || m.Kind() != entity.KindNPC {
		t.Errorf("bound speaker = %d kind %v", m.Speaker(), m.Kind())
	}

	m.Update(0.016, match, press(core.ActionUseTool))
	m.Update(0.016, match, press(core.ActionUseTool))
	if m.Text() != breederLines[2] {
		t.Errorf("two advances: text = %q", m.Text())
	}

	m.Update(0.016, match, press(core.ActionUseTool))
	if m.Text() != breederLines[0] {
		t.Errorf("third advance should wrap, text = %q", m.Text())
	}
	if !m.Active() {
		t.Error("advancing should keep exactly one active session")
	}
}

func TestHideFromEveryState(t *testing.T) {
	npc, dir := newBreeder()
	match := matchOf(npc)

	setups := []struct {
		name  string
		setup func(m *Machine)
	}{
		{"hidden", func(m *Machine) {}},
		{"prompt", func(m *Machine) { m.Update(0.016, match, none) }},
		{"active", func(m *Machine) { m.Update(0.016, match, press(core.ActionInteract)) }},
		{"advanced", func(m *Machine) {
			m.Update(0.016, match, press(core.ActionInteract))
			m.Update(0.016, match, press(core.ActionUseTool))
		}},
	}
	for _, tt := range setups {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(dir, nil)
			tt.setup(m)
			m.Hide()
			if m.State() != Hidden {
				t.Errorf("Hide() left state %v", m.State())
			}
			if m.Speaker() != entity.NilID {
				t.Error("Hide() should unbind the speaker")
			}
		})
	}
}

func TestMenuClosesBox(t *testing.T) {
	npc, dir := newBreeder()
	m := NewMachine(dir, nil)
	match := matchOf(npc)

	m.Update(0.016, match, press(core.ActionInteract))
	m.Update(0.016, match, press(core.ActionMenu))
	if m.Active() {
		t.Fatal("menu should close the dialogue")
	}
	// Still in range, so the prompt is back within the same frame.
	if m.State() != PromptVisible {
		t.Errorf("state = %v, expected prompt", m.State())
	}
}

func TestInteractWithNothingHides(t *testing.T) {
	npc, dir := newBreeder()
	m := NewMachine(dir, nil)

	m.Update(0.016, matchOf(npc), press(core.ActionInteract))
	// Walking away keeps the box open.
	m.Update(0.016, proximity.Match{}, none)
	if !m.Active() {
		t.Fatal("leaving range alone should not close the box")
	}
	m.Update(0.016, proximity.Match{}, press(core.ActionInteract))
	if m.State() != Hidden {
		t.Errorf("interact with nothing nearby: state = %v", m.State())
	}
}

func TestUseToolIgnoredWhenClosed(t *testing.T) {
	npc, dir := newBreeder()
	m := NewMachine(dir, nil)
	m.Update(0.016, matchOf(npc), press(core.ActionUseTool))
	if npc.Cursor() != 0 || m.Active() {
		t.Error("UseTool should do nothing without an open box")
	}
}

func TestCursorPersistsAcrossSessions(t *testing.T) {
	npc, dir := newBreeder()
	m := NewMachine(dir, nil)
	match := matchOf(npc)

	m.Update(0.016, match, press(core.ActionInteract))
	m.Update(0.016, match, press(core.ActionUseTool))
	m.Update(0.016, match, press(core.ActionMenu))
	m.Update(0.016, match, press(core.ActionInteract))
	if m.Text() != breederLines[1] {
		t.Errorf("reopened text = %q, expected the second line", m.Text())
	}
}

func TestEmptyDialogue(t *testing.T) {
	var seq entity.Sequence
	bush := entity.NewObject(core.Pt(0, 0), entity.KindGardenBush, nil)
	bush.AssignID(seq.Next())
	m := NewMachine(mapDirectory{bush.ID(): bush}, nil)
	match := matchOf(bush)

	m.Update(0.016, match, none)
	if m.State() != PromptVisible {
		t.Fatal("prompt should show even without lines")
	}
	m.Update(0.016, match, press(core.ActionInteract))
	if !m.Active() || m.Text() != "" {
		t.Fatalf("empty dialogue should open with empty text, got %v %q", m.State(), m.Text())
	}
	timer := m.DisplayTimer()
	m.Advance()
	if m.Text() != "" || bush.Cursor() != 0 || m.DisplayTimer() != timer {
		t.Error("advancing empty dialogue should change nothing")
	}
}

func TestZoneDialogue(t *testing.T) {
	house := entity.NewZone(core.NewRect(256, 256, 256, 256), entity.KindHouse,
		[]string{"Your cozy home.", "The door is unlocked."})
	m := NewMachine(mapDirectory{}, nil)
	match := proximity.Match{Zone: house, Kind: entity.KindHouse}

	m.Update(0.016, match, press(core.ActionInteract))
	m.Update(0.016, match, press(core.ActionUseTool))
	if m.Text() != "The door is unlocked." || house.Cursor() != 1 {
		t.Errorf("zone advance: text=%q cursor=%d", m.Text(), house.Cursor())
	}
}

func TestRemovedSpeakerFallsBackToZone(t *testing.T) {
	var seq entity.Sequence
	patch := entity.NewFlowerPatch(core.Pt(800, 290), entity.FlowersFarm, []string{"Pink blooms."})
	patch.AssignID(seq.Next())
	dir := mapDirectory{patch.ID(): patch}
	zone := entity.NewZone(core.NewRect(768, 256, 128, 128), entity.KindFarmFlowers, []string{"Flowers by the farm."})

	m := NewMachine(dir, zoneList{zone})
	var lost entity.ID
	m.OnFallback = func(id entity.ID, z *entity.Zone) { lost = id }

	m.Update(0.016, matchOf(patch), press(core.ActionInteract))
	delete(dir, patch.ID())
	m.Update(0.016, proximity.Match{}, none)

	if !m.Active() {
		t.Fatal("session should survive on the fallback zone")
	}
	if m.Speaker() != entity.NilID || m.Text() != "Flowers by the farm." {
		t.Errorf("speaker=%d text=%q", m.Speaker(), m.Text())
	}
	if lost != patch.ID() {
		t.Errorf("OnFallback got %d", lost)
	}

	m.Update(0.016, proximity.Match{}, press(core.ActionUseTool))
	if m.Text() != "Flowers by the farm." || zone.Cursor() != 0 {
		t.Error("single-line zone should wrap onto itself")
	}
}

func TestRemovedSpeakerWithoutZoneHides(t *testing.T) {
	npc, dir := newBreeder()
	m := NewMachine(dir, zoneList{})

	m.Update(0.016, matchOf(npc), press(core.ActionInteract))
	delete(dir, npc.ID())
	m.Update(0.016, proximity.Match{}, none)
	if m.State() != Hidden {
		t.Errorf("state = %v, expected hidden", m.State())
	}

	// Advancing a vanished speaker is harmless too.
	npc2, dir2 := newBreeder()
	m2 := NewMachine(dir2, nil)
	m2.Update(0.016, matchOf(npc2), press(core.ActionInteract))
	delete(dir2, npc2.ID())
	m2.Advance()
	if npc2.Cursor() != 0 {
		t.Error("removed speaker should not be advanced")
	}
}

func TestFade(t *testing.T) {
	npc, dir := newBreeder()
	m := NewMachine(dir, nil)
	match := matchOf(npc)

	m.Update(0.1, match, press(core.ActionInteract))
	if m.Alpha() != MaxAlpha {
		t.Fatalf("opening should show the box fully, alpha = %v", m.Alpha())
	}

	m.Update(0.1, match, press(core.ActionMenu))
	if got := m.Alpha(); got != MaxAlpha-FadeOutRate*0.1 {
		t.Errorf("alpha after one fading frame = %v", got)
	}
	if v := m.View(); !v.ShowBox || v.Kind != entity.KindNPC || v.Text != breederLines[0] {
		t.Errorf("fading box should keep its title and line, view = %+v", v)
	}

	m.Update(1, match, none)
	if m.Alpha() != 0 || m.View().ShowBox {
		t.Errorf("alpha should bottom out at 0, got %v", m.Alpha())
	}
	if m.Kind() != entity.KindNone || m.Text() != "" {
		t.Errorf("faded box should be cleared, kind=%v text=%q", m.Kind(), m.Text())
	}
}

func TestTransitionsReported(t *testing.T) {
	npc, dir := newBreeder()
	m := NewMachine(dir, nil)
	match := matchOf(npc)

	var got []State
	m.OnTransition = func(from, to State) { got = append(got, to) }

	m.Update(0.016, match, none)
	m.Update(0.016, match, press(core.ActionInteract))
	m.Update(0.016, match, press(core.ActionUseTool))
	m.Update(0.016, proximity.Match{}, press(core.ActionInteract))

	want := []State{PromptVisible, Active, Hidden}
	if len(got) != len(want) {
		t.Fatalf("transitions = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("transition %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestView(t *testing.T) {
	npc, dir := newBreeder()
	m := NewMachine(dir, nil)

	m.Update(0.016, matchOf(npc), none)
	v := m.View()
	if !v.ShowPrompt || v.Prompt != PromptText || v.ShowBox {
		t.Errorf("prompt view = %+v", v)
	}

	m.Update(0.016, matchOf(npc), press(core.ActionInteract))
	v = m.View()
	if v.ShowPrompt || !v.ShowBox || v.Text != breederLines[0] || len(v.Hints) != 2 {
		t.Errorf("active view = %+v", v)
	}
}
