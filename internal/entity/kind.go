package entity

import "fmt"

// Kind tags what an interactable is, independent of how it is implemented.
type Kind int

const (
	KindNone Kind = iota
	KindHouse
	KindFarm
	KindFarmFlowers
	KindGarden
	KindGardenFlower
	KindGardenBush
	KindWater
	KindNPC
)

var kindNames = map[Kind]string{
	KindNone:         "none",
	KindHouse:        "house",
	KindFarm:         "farm",
	KindFarmFlowers:  "farm_flowers",
	KindGarden:       "garden",
	KindGardenFlower: "garden_flower",
	KindGardenBush:   "garden_bush",
	KindWater:        "water",
	KindNPC:          "npc",
}

// String returns the snake_case name used in world files.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a world-file name back into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("entity: unknown kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
