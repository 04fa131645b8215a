package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the world to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveUp           // W, Up arrow
	ActionMoveDown         // S, Down arrow
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionInteract         // Space - open dialogue with whatever is nearby
	ActionUseTool          // E - next dialogue line
	ActionMenu             // Esc, Q - close dialogue
	ActionQuit             // Ctrl+C - exit game
)

// Actions lists every action except ActionNone, in declaration order.
var Actions = []Action{
	ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight,
	ActionInteract, ActionUseTool, ActionMenu, ActionQuit,
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionInteract:
		return "Interact"
	case ActionUseTool:
		return "UseTool"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action moves the player.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// Input is the query surface the world consumes each frame.
// Pressed means the action went down this frame; held means it is down now.
type Input interface {
	IsActionPressed(a Action) bool
	IsActionHeld(a Action) bool
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Pressed holds actions that transitioned to down this frame.
	Pressed map[Action]bool
	// Held holds actions that are down this frame, including new presses.
	Held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed (and therefore held) for this frame.
func (f *InputFrame) Set(a Action) {
	f.ensure()
	f.Pressed[a] = true
	f.Held[a] = true
}

// Hold marks an action as held without a press edge.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.Held[a] = true
}

func (f *InputFrame) ensure() {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
}

// IsActionPressed returns true if the action went down this frame.
func (f InputFrame) IsActionPressed(a Action) bool {
	if f.Pressed == nil {
		return false
	}
	return f.Pressed[a]
}

// IsActionHeld returns true if the action is down this frame.
func (f InputFrame) IsActionHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// InputState derives per-frame press edges from a stream of key events.
//
// Terminals report key presses (and auto-repeats) but never releases, so an
// action is treated as released once no press has arrived for its hold
// window. Movement keys use a window long enough to bridge auto-repeat;
// every other action is released after a single frame so that each key
// press produces exactly one edge.
type InputState struct {
	moveHold  int
	tick      int
	current   map[Action]bool
	previous  map[Action]bool
	lastPress map[Action]int
}

// DefaultMoveHold is the movement hold window in frames at 60 FPS.
const DefaultMoveHold = 8

// NewInputState creates a tracker; moveHold <= 0 selects DefaultMoveHold.
func NewInputState(moveHold int) *InputState {
	if moveHold <= 0 {
		moveHold = DefaultMoveHold
	}
	return &InputState{
		moveHold:  moveHold,
		current:   make(map[Action]bool),
		previous:  make(map[Action]bool),
		lastPress: make(map[Action]int),
	}
}

// Press records a key-down (or auto-repeat) event for an action.
func (s *InputState) Press(a Action) {
	if a == ActionNone {
		return
	}
	s.current[a] = true
	s.lastPress[a] = s.tick
}

// Frame returns the input frame for the current tick.
func (s *InputState) Frame() InputFrame {
	f := NewInputFrame()
	for a, down := range s.current {
		if !down {
			continue
		}
		f.Held[a] = true
		if !s.previous[a] {
			f.Pressed[a] = true
		}
	}
	return f
}

// Advance ends the current tick: expired actions are released and the
// surviving state becomes the previous state for edge detection.
func (s *InputState) Advance() {
	for a := range s.current {
		if s.tick-s.lastPress[a] >= s.holdFor(a)-1 {
			delete(s.current, a)
		}
	}
	clear(s.previous)
	for a, down := range s.current {
		s.previous[a] = down
	}
	s.tick++
}

func (s *InputState) holdFor(a Action) int {
	if a.IsMovement() {
		return s.moveHold
	}
	return 1
}
