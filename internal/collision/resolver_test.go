package collision

import (
	"testing"

	"github.com/vovakirdan/tui-homestead/internal/core"
)

// 10x8 tiles of 128 px with a one-tile water ring.
var testInterior = core.NewRect(128, 128, 8*128, 6*128)

func TestCanMoveBlockedRect(t *testing.T) {
	r := NewResolver(core.NewRect(0, 0, 1000, 1000), []core.Rect{core.NewRect(90, 90, 50, 50)})

	if r.CanMove(core.Pt(0, 0), core.Pt(100, 100)) {
		t.Error("player at (100,100) overlaps (90,90,50,50) and should be blocked")
	}
	if got := r.Check(core.Pt(100, 100)); got != Obstacle {
		t.Errorf("Check() = %v, expected obstacle", got)
	}
}

func TestCanMoveInsideAndOutside(t *testing.T) {
	house := core.NewRect(256, 256, 256, 256)
	r := NewResolver(testInterior, []core.Rect{house})

	// Every position with the box fully inside the house is rejected.
	for x := house.X; x <= house.Right()-PlayerWidth; x += 16 {
		for y := house.Y; y <= house.Bottom()-PlayerHeight; y += 16 {
			if r.CanMove(core.Pt(0, 0), core.Pt(float64(x), float64(y))) {
				t.Fatalf("position (%d,%d) inside the house was accepted", x, y)
			}
		}
	}

	// Every position fully clear of the house and inside the interior is accepted.
	for x := testInterior.X; x <= testInterior.Right()-PlayerWidth; x += 16 {
		for y := testInterior.Y; y <= testInterior.Bottom()-PlayerHeight; y += 16 {
			box := PlayerRect(core.Pt(float64(x), float64(y)))
			if box.Intersects(house) {
				continue
			}
			if !r.CanMove(core.Pt(0, 0), core.Pt(float64(x), float64(y))) {
				t.Fatalf("free position (%d,%d) was rejected", x, y)
			}
		}
	}
}

func TestCheckOrder(t *testing.T) {
	blockAll := func(core.Rect) bool { return true }
	r := NewResolver(testInterior, []core.Rect{core.NewRect(300, 300, 50, 50)}, blockAll)

	tests := []struct {
		name string
		pos  core.Point
		want Verdict
	}{
		{"in the water", core.Pt(10, 10), Border},
		{"straddling the border", core.Pt(120, 200), Border},
		{"on the obstacle", core.Pt(310, 310), Obstacle},
		{"open ground", core.Pt(600, 600), Entity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Check(tt.pos); got != tt.want {
				t.Errorf("Check(%v) = %v, expected %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestBlockersSeeProposedBox(t *testing.T) {
	var seen []core.Rect
	spy := func(box core.Rect) bool {
		seen = append(seen, box)
		return false
	}
	r := NewResolver(testInterior, nil, spy, nil)

	if !r.CanMove(core.Pt(200, 200), core.Pt(210.7, 220.2)) {
		t.Fatal("move should be accepted")
	}
	want := core.NewRect(210, 220, PlayerWidth, PlayerHeight)
	if len(seen) != 1 || seen[0] != want {
		t.Errorf("predicate saw %+v, expected [%+v]", seen, want)
	}
}

func TestCanMoveIgnoresCurrent(t *testing.T) {
	r := NewResolver(testInterior, nil)
	// Current position is out in the water; only the proposal counts.
	if !r.CanMove(core.Pt(-500, -500), core.Pt(300, 300)) {
		t.Error("valid proposal should be accepted from an invalid position")
	}
	if r.CanMove(core.Pt(300, 300), core.Pt(-500, -500)) {
		t.Error("invalid proposal should be rejected")
	}
}

func TestSlide(t *testing.T) {
	wall := core.NewRect(400, 0, 20, 2000)
	r := NewResolver(testInterior, []core.Rect{wall})

	// Moving diagonally into the wall keeps the vertical part.
	got := r.Slide(core.Pt(360, 300), core.Pt(380, 320))
	if got != core.Pt(360, 320) {
		t.Errorf("Slide() = %v, expected (360,320)", got)
	}

	// Free moves pass through unchanged.
	got = r.Slide(core.Pt(200, 200), core.Pt(210, 190))
	if got != core.Pt(210, 190) {
		t.Errorf("Slide() = %v, expected (210,190)", got)
	}
}

func TestVerdictString(t *testing.T) {
	if Clear.String() != "clear" || Entity.String() != "entity" || Verdict(42).String() != "unknown" {
		t.Error("unexpected Verdict strings")
	}
}
