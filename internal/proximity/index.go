// Package proximity answers "what is the player standing next to?".
package proximity

import (
	"math"

	"github.com/vovakirdan/tui-homestead/internal/collision"
	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/entity"
)

// Source is a registry of dynamic interactables.
type Source interface {
	// FindInteractableNear returns the first interactable entity in range of
	// a player centred at pos. radius <= 0 means each entity's own radius.
	FindInteractableNear(pos core.Point, radius float64) (entity.Interactable, bool)
	// Nearest returns the entity closest to pos, strictly within maxDistance.
	Nearest(pos core.Point, maxDistance float64) (entity.Interactable, float64, bool)
}

// Margins maps a zone kind to the tolerance added around its bounds.
type Margins map[entity.Kind]int

// DefaultMargin applies to kinds missing from Margins.
const DefaultMargin = 35

// DefaultMargins returns the per-kind tuning used by the stock world.
func DefaultMargins() Margins {
	return Margins{
		entity.KindFarmFlowers:  25,
		entity.KindGardenFlower: 30,
		entity.KindFarm:         35,
		entity.KindHouse:        40,
	}
}

// With returns a copy of m with overrides laid on top.
func (m Margins) With(overrides map[entity.Kind]int) Margins {
	out := make(Margins, len(m)+len(overrides))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// For returns the margin for kind.
func (m Margins) For(kind entity.Kind) int {
	if v, ok := m[kind]; ok {
		return v
	}
	return DefaultMargin
}

// Match is the result of a proximity query. The zero value means nothing is
// in range. Exactly one of Entity and Zone is set otherwise.
type Match struct {
	Entity entity.Interactable
	Zone   *entity.Zone
	Kind   entity.Kind
}

// Found reports whether anything matched.
func (m Match) Found() bool {
	return m.Entity != nil || m.Zone != nil
}

// Speaker returns whatever owns the dialogue cursor for this match.
func (m Match) Speaker() entity.Speaker {
	switch {
	case m.Entity != nil:
		return m.Entity
	case m.Zone != nil:
		return m.Zone
	default:
		return nil
	}
}

// ID returns the entity handle, or NilID for zones and empty matches.
func (m Match) ID() entity.ID {
	if m.Entity == nil {
		return entity.NilID
	}
	return m.Entity.ID()
}

// Index looks up interactables around the player. Dynamic sources win over
// static zones; within each group the first match in order wins.
type Index struct {
	sources []Source
	zones   []*entity.Zone
	margins Margins
}

// NewIndex creates an index over static zones and dynamic sources.
// Sources are queried in the order given.
func NewIndex(zones []*entity.Zone, margins Margins, sources ...Source) *Index {
	if margins == nil {
		margins = DefaultMargins()
	}
	idx := &Index{
		zones:   append([]*entity.Zone(nil), zones...),
		margins: margins,
	}
	for _, s := range sources {
		if s != nil {
			idx.sources = append(idx.sources, s)
		}
	}
	return idx
}

// Zones returns the static zones in declaration order.
func (idx *Index) Zones() []*entity.Zone {
	return append([]*entity.Zone(nil), idx.zones...)
}

// Margin returns the tolerance applied to zones of kind.
func (idx *Index) Margin(kind entity.Kind) int {
	return idx.margins.For(kind)
}

// FindNearbyInteractable returns what a player with its top-left at player
// can interact with. Dynamic entities are tested by radius from the player's
// centre; zones by overlap of the player box with the zone grown by its margin.
func (idx *Index) FindNearbyInteractable(player core.Point) Match {
	box := collision.PlayerRect(player)
	centre := box.CenterPoint()

	for _, s := range idx.sources {
		if e, ok := s.FindInteractableNear(centre, 0); ok {
			return Match{Entity: e, Kind: e.Kind()}
		}
	}

	for _, z := range idx.zones {
		if box.Intersects(z.Bounds().Expand(idx.margins.For(z.Kind()))) {
			return Match{Zone: z, Kind: z.Kind()}
		}
	}
	return Match{}
}

// ZoneOfKind returns the first static zone of the given kind.
func (idx *Index) ZoneOfKind(kind entity.Kind) (*entity.Zone, bool) {
	for _, z := range idx.zones {
		if z.Kind() == kind {
			return z, true
		}
	}
	return nil, false
}

// GetNearestObject returns the dynamic entity whose centre is closest to pos
// and strictly closer than maxDistance.
func (idx *Index) GetNearestObject(pos core.Point, maxDistance float64) (entity.Interactable, bool) {
	var (
		best     entity.Interactable
		bestDist = math.Inf(1)
	)
	for _, s := range idx.sources {
		e, d, ok := s.Nearest(pos, maxDistance)
		if ok && d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, best != nil
}
