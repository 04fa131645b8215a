package registry

import (
	"errors"

	"github.com/vovakirdan/tui-homestead/internal/entity"
)

// Built-in archetype IDs.
const (
	ArchetypeDog     = "dog"
	ArchetypeFlowers = "flowers"
)

func init() {
	Register(ArchetypeDog, "Patrol Dog", newDog)
	Register(ArchetypeFlowers, "Flower Patch", newFlowers)
}

func newDog(p Params) (entity.Dynamic, error) {
	if p.PatrolWidth < 0 {
		return nil, errors.New("patrol width must not be negative")
	}
	lo, hi := p.MinX, p.MaxX
	if hi <= lo {
		lo, hi = p.Position.X-p.PatrolWidth/2, p.Position.X+p.PatrolWidth/2
	}
	d := entity.NewDogPatrol(p.Position, p.PatrolWidth, lo, hi)
	if p.Speed > 0 {
		d.SetSpeed(p.Speed)
	}
	if len(p.Lines) > 0 {
		d.SetDialogue(p.Lines)
	}
	if p.Radius > 0 {
		d.SetInteractionRadius(p.Radius)
	}
	return d, nil
}

func newFlowers(p Params) (entity.Dynamic, error) {
	variant, err := entity.ParseFlowerVariant(p.Variant)
	if err != nil {
		return nil, err
	}
	f := entity.NewFlowerPatch(p.Position, variant, p.Lines)
	if p.Radius > 0 {
		f.SetInteractionRadius(p.Radius)
	}
	return f, nil
}
