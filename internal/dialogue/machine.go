// Package dialogue runs the conversation overlay: the "press to interact"
// prompt, the dialogue box, and which speaker's line the box shows.
package dialogue

import (
	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/entity"
	"github.com/vovakirdan/tui-homestead/internal/proximity"
)

// State is the discrete overlay state.
type State int

const (
	Hidden State = iota
	PromptVisible
	Active
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case PromptVisible:
		return "prompt"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Fade rates in alpha units per second.
const (
	FadeInRate  = 400.0
	FadeOutRate = 600.0
	MaxAlpha    = 255.0
)

// Overlay text.
const (
	PromptText = "Press SPACE to interact"
	HintMore   = "E: More info"
	HintExit   = "Q: Exit"
)

// Directory resolves entity handles; ok is false once an entity is gone.
type Directory interface {
	Lookup(id entity.ID) (entity.Interactable, bool)
}

// ZoneFinder finds a static zone to fall back to.
type ZoneFinder interface {
	ZoneOfKind(kind entity.Kind) (*entity.Zone, bool)
}

// Machine is the single dialogue session. It is driven once per frame by
// Update and read by the renderer through View.
type Machine struct {
	dir   Directory
	zones ZoneFinder

	state   State
	near    bool
	alpha   float64
	speaker entity.ID
	zone    *entity.Zone
	kind    entity.Kind
	text    string
	timer   float64

	// OnTransition, when set, is called on every state change.
	OnTransition func(from, to State)
	// OnFallback, when set, is called when the bound speaker disappeared.
	// zone is nil if the session had to close.
	OnFallback func(lost entity.ID, zone *entity.Zone)
}

// NewMachine creates a hidden session. zones may be nil, in which case a
// removed speaker always closes the box.
func NewMachine(dir Directory, zones ZoneFinder) *Machine {
	return &Machine{dir: dir, zones: zones}
}

// Update advances the session by one frame. Input edges are evaluated in
// order: Menu hides, Interact opens or hides, UseTool advances.
func (m *Machine) Update(dt float64, match proximity.Match, in core.Input) {
	m.near = match.Found()

	if in.IsActionPressed(core.ActionMenu) {
		m.Hide()
	}
	if in.IsActionPressed(core.ActionInteract) {
		if match.Found() {
			m.Open(match)
		} else {
			m.Hide()
		}
	}
	if in.IsActionPressed(core.ActionUseTool) && m.state == Active {
		m.Advance()
	}

	m.revalidate()

	if m.state != Active {
		if m.near {
			m.setState(PromptVisible)
		} else {
			m.setState(Hidden)
		}
	}

	m.fade(dt)
}

// Open starts (or restarts) a session with whatever match points at.
// The speaker's cursor is left where it was.
func (m *Machine) Open(match proximity.Match) {
	if !match.Found() {
		return
	}
	m.speaker = match.ID()
	m.zone = match.Zone
	m.kind = match.Kind
	m.text = lineOf(match.Speaker())
	m.alpha = MaxAlpha
	m.timer = 0
	m.setState(Active)
}

// Advance moves the bound speaker to its next line. It does nothing when
// the box is closed or the speaker has no lines.
func (m *Machine) Advance() {
	if m.state != Active {
		return
	}
	s := m.currentSpeaker()
	if s == nil || s.LineCount() == 0 {
		return
	}
	s.Advance()
	m.text = lineOf(s)
	m.timer = 0
}

// Hide closes the session from any state. The last line and its kind are
// kept until the box has faded out; the prompt comes back on the next
// Update if something is still in range.
func (m *Machine) Hide() {
	m.speaker = entity.NilID
	m.zone = nil
	m.timer = 0
	m.setState(Hidden)
}

// State returns the discrete state.
func (m *Machine) State() State { return m.state }

// Active reports whether the dialogue box is open.
func (m *Machine) Active() bool { return m.state == Active }

// Alpha returns the fade value in [0, 255].
func (m *Machine) Alpha() float64 { return m.alpha }

// Text returns the line the box shows, or last showed while fading out.
func (m *Machine) Text() string { return m.text }

// Kind returns the kind of the current speaker, or of the last one while
// the box fades out.
func (m *Machine) Kind() entity.Kind { return m.kind }

// Speaker returns the bound entity handle; NilID for zones or no session.
func (m *Machine) Speaker() entity.ID { return m.speaker }

// DisplayTimer returns seconds since the current line appeared.
func (m *Machine) DisplayTimer() float64 { return m.timer }

func (m *Machine) currentSpeaker() entity.Speaker {
	if m.speaker != entity.NilID {
		if m.dir == nil {
			return nil
		}
		e, ok := m.dir.Lookup(m.speaker)
		if !ok {
			return nil
		}
		return e
	}
	if m.zone != nil {
		return m.zone
	}
	return nil
}

// revalidate drops a speaker that has been removed, falling back to the
// first static zone of the same kind.
func (m *Machine) revalidate() {
	if m.state != Active || m.speaker == entity.NilID {
		return
	}
	if m.dir != nil {
		if _, ok := m.dir.Lookup(m.speaker); ok {
			return
		}
	}

	lost := m.speaker
	m.speaker = entity.NilID

	var zone *entity.Zone
	if m.zones != nil {
		zone, _ = m.zones.ZoneOfKind(m.kind)
	}
	if m.OnFallback != nil {
		m.OnFallback(lost, zone)
	}
	if zone == nil {
		m.Hide()
		return
	}
	m.zone = zone
	m.text = lineOf(zone)
	m.timer = 0
}

func (m *Machine) fade(dt float64) {
	if m.state == Active {
		m.alpha = core.ClampF(m.alpha+FadeInRate*dt, 0, MaxAlpha)
		m.timer += dt
		return
	}
	m.alpha = core.ClampF(m.alpha-FadeOutRate*dt, 0, MaxAlpha)
	if m.alpha == 0 {
		m.kind = entity.KindNone
		m.text = ""
	}
}

func (m *Machine) setState(s State) {
	if s == m.state {
		return
	}
	from := m.state
	m.state = s
	if m.OnTransition != nil {
		m.OnTransition(from, s)
	}
}

func lineOf(s entity.Speaker) string {
	if s == nil {
		return ""
	}
	line, _ := s.CurrentLine()
	return line
}

// View is a read-only snapshot for the renderer.
type View struct {
	State      State
	ShowPrompt bool
	Prompt     string
	ShowBox    bool
	Alpha      float64
	Text       string
	Kind       entity.Kind
	Hints      []string
}

// View returns the current overlay snapshot. The box stays visible while
// it fades out after closing.
func (m *Machine) View() View {
	return View{
		State:      m.state,
		ShowPrompt: m.state == PromptVisible,
		Prompt:     PromptText,
		ShowBox:    m.state == Active || m.alpha > 0,
		Alpha:      m.alpha,
		Text:       m.text,
		Kind:       m.kind,
		Hints:      []string{HintMore, HintExit},
	}
}
