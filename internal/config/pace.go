package config

import (
	"fmt"

	"github.com/vovakirdan/tui-homestead/internal/entity"
	"github.com/vovakirdan/tui-homestead/internal/registry"
)

// PacePreset represents a named movement pace.
type PacePreset string

const (
	PaceRelaxed PacePreset = "relaxed"
	PaceNormal  PacePreset = "normal"
	PaceBrisk   PacePreset = "brisk"
)

// Paces lists every preset, slowest first.
var Paces = []PacePreset{PaceRelaxed, PaceNormal, PaceBrisk}

// ParsePace validates a preset name. The empty string selects normal.
func ParsePace(s string) (PacePreset, error) {
	switch p := PacePreset(s); p {
	case PaceRelaxed, PaceNormal, PaceBrisk:
		return p, nil
	case "":
		return PaceNormal, nil
	default:
		return "", fmt.Errorf("config: unknown pace %q", s)
	}
}

// SpeedMultiplier returns the factor applied to every speed for a preset.
func SpeedMultiplier(p PacePreset) float64 {
	switch p {
	case PaceRelaxed:
		return 0.75
	case PaceBrisk:
		return 1.35
	default:
		return 1.0
	}
}

// ApplyPace scales the player's speed and every moving object's speed.
// Objects without an explicit speed start from the archetype default.
func ApplyPace(cfg *WorldConfig, p PacePreset) {
	m := SpeedMultiplier(p)
	cfg.Player.Speed *= m
	for i := range cfg.Objects {
		o := &cfg.Objects[i]
		if o.Archetype != registry.ArchetypeDog {
			continue
		}
		if o.Speed == 0 {
			o.Speed = entity.DogSpeed
		}
		o.Speed *= m
	}
}
