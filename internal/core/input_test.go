package core

import "testing"

func TestInputFrameSetAndHold(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionInteract)
	f.Hold(ActionMoveLeft)

	if !f.IsActionPressed(ActionInteract) || !f.IsActionHeld(ActionInteract) {
		t.Error("Set() should mark the action pressed and held")
	}
	if f.IsActionPressed(ActionMoveLeft) {
		t.Error("Hold() should not create a press edge")
	}
	if !f.IsActionHeld(ActionMoveLeft) {
		t.Error("Hold() should mark the action held")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.IsActionPressed(ActionQuit) || f.IsActionHeld(ActionQuit) {
		t.Error("zero InputFrame should report nothing")
	}
	f.Set(ActionQuit)
	if !f.IsActionPressed(ActionQuit) {
		t.Error("Set() on zero InputFrame should allocate")
	}
}

func TestInputStateDiscreteActionEdges(t *testing.T) {
	s := NewInputState(0)

	s.Press(ActionInteract)
	f := s.Frame()
	if !f.IsActionPressed(ActionInteract) {
		t.Fatal("first frame after press should report an edge")
	}
	s.Advance()

	f = s.Frame()
	if f.IsActionPressed(ActionInteract) || f.IsActionHeld(ActionInteract) {
		t.Error("discrete action should be released after one frame")
	}
	s.Advance()

	// A second press is a new edge.
	s.Press(ActionInteract)
	if !s.Frame().IsActionPressed(ActionInteract) {
		t.Error("second press should produce a new edge")
	}
}

func TestInputStateMovementHold(t *testing.T) {
	s := NewInputState(4)
	s.Press(ActionMoveRight)

	for frame := 0; frame < 4; frame++ {
		f := s.Frame()
		if !f.IsActionHeld(ActionMoveRight) {
			t.Fatalf("frame %d: movement should still be held", frame)
		}
		if frame == 0 && !f.IsActionPressed(ActionMoveRight) {
			t.Error("first frame should be an edge")
		}
		if frame > 0 && f.IsActionPressed(ActionMoveRight) {
			t.Errorf("frame %d: held movement should not repeat the edge", frame)
		}
		s.Advance()
	}

	if s.Frame().IsActionHeld(ActionMoveRight) {
		t.Error("movement should be released after the hold window")
	}
}

func TestInputStateRepeatExtendsHold(t *testing.T) {
	s := NewInputState(2)
	s.Press(ActionMoveUp)
	for i := 0; i < 10; i++ {
		s.Press(ActionMoveUp) // auto-repeat
		f := s.Frame()
		if !f.IsActionHeld(ActionMoveUp) {
			t.Fatalf("tick %d: auto-repeat should keep movement held", i)
		}
		if i > 0 && f.IsActionPressed(ActionMoveUp) {
			t.Fatalf("tick %d: auto-repeat should not create edges", i)
		}
		s.Advance()
	}
}

func TestActionString(t *testing.T) {
	for _, a := range Actions {
		if a.String() == "Unknown" {
			t.Errorf("action %d has no name", int(a))
		}
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
