// Package collision decides whether the player may occupy a position.
package collision

import "github.com/vovakirdan/tui-homestead/internal/core"

// Player box size in world pixels.
const (
	PlayerWidth  = 32
	PlayerHeight = 32
)

// Predicate reports whether something dynamic occupies the proposed player box.
type Predicate func(proposed core.Rect) bool

// Verdict tells which stage, if any, rejected a move.
type Verdict int

const (
	Clear    Verdict = iota // Move accepted
	Border                  // Box leaves the walkable interior
	Obstacle                // Box overlaps static geometry
	Entity                  // A dynamic entity vetoed the move
)

func (v Verdict) String() string {
	switch v {
	case Clear:
		return "clear"
	case Border:
		return "border"
	case Obstacle:
		return "obstacle"
	case Entity:
		return "entity"
	default:
		return "unknown"
	}
}

// Resolver checks proposed player positions against static world geometry
// and a fixed list of dynamic predicates. It holds no mutable state.
type Resolver struct {
	interior  core.Rect
	obstacles []core.Rect
	blockers  []Predicate
}

// NewResolver creates a resolver. interior is the walkable area the whole
// player box must stay inside; obstacles are static blocking rectangles;
// blockers are consulted last, in order.
func NewResolver(interior core.Rect, obstacles []core.Rect, blockers ...Predicate) *Resolver {
	r := &Resolver{
		interior:  interior,
		obstacles: append([]core.Rect(nil), obstacles...),
	}
	for _, b := range blockers {
		if b != nil {
			r.blockers = append(r.blockers, b)
		}
	}
	return r
}

// PlayerRect returns the box the player occupies with its top-left at p.
func PlayerRect(p core.Point) core.Rect {
	return core.RectAt(p, PlayerWidth, PlayerHeight)
}

// Interior returns the walkable area.
func (r *Resolver) Interior() core.Rect { return r.interior }

// Obstacles returns the static blocking rectangles.
func (r *Resolver) Obstacles() []core.Rect {
	return append([]core.Rect(nil), r.obstacles...)
}

// Check reports which stage rejects a player at proposed, or Clear.
func (r *Resolver) Check(proposed core.Point) Verdict {
	box := PlayerRect(proposed)

	if !r.interior.ContainsRect(box) {
		return Border
	}
	for _, o := range r.obstacles {
		if box.Intersects(o) {
			return Obstacle
		}
	}
	for _, blocked := range r.blockers {
		if blocked(box) {
			return Entity
		}
	}
	return Clear
}

// CanMove reports whether the player may move from current to proposed.
// Only the proposed position matters; an invalid current position is not
// corrected.
func (r *Resolver) CanMove(current, proposed core.Point) bool {
	return r.Check(proposed) == Clear
}

// Slide tries the full move first, then each axis on its own, so the player
// can slide along walls. It returns the accepted position.
func (r *Resolver) Slide(current, proposed core.Point) core.Point {
	if r.CanMove(current, proposed) {
		return proposed
	}
	next := current
	if x := core.Pt(proposed.X, current.Y); proposed.X != current.X && r.CanMove(current, x) {
		next = x
	}
	if y := core.Pt(next.X, proposed.Y); proposed.Y != current.Y && r.CanMove(next, y) {
		next = y
	}
	return next
}
