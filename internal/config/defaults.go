package config

import (
	_ "embed"
)

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

const defaultTile = 128

// DefaultWorldConfig returns the stock homestead: a 10x8 tile island with a
// house, a farm, a garden, two villagers, a dog and four flower patches.
func DefaultWorldConfig() WorldConfig {
	const t = defaultTile
	return WorldConfig{
		Name: "homestead",
		Grid: GridConfig{TileSize: t, Width: 10, Height: 8, Border: 1},
		Player: PlayerConfig{
			Start: PointConfig{X: 5 * t, Y: 4 * t},
			Speed: 200,
		},
		Obstacles: []TileRect{
			{X: 2, Y: 2, W: 2, H: 2}, // house
		},
		Zones: []ZoneConfig{
			{Kind: "house", Area: TileRect{X: 2, Y: 2, W: 2, H: 2}, Lines: []string{
				"A cozy cottage with a red tile roof.",
				"Windows reflect warm sunlight beautifully.",
				"This looks like a peaceful place to live.",
			}},
			{Kind: "farm", Area: TileRect{X: 6, Y: 2, W: 3, H: 3}, Lines: []string{
				"Rich soil perfect for growing crops.",
				"The seedlings are sprouting nicely!",
				"This farm bed looks well-maintained.",
			}},
			{Kind: "garden_flower", Area: TileRect{X: 3, Y: 5, W: 4, H: 2}, Lines: gardenFlowerLines},
			{Kind: "farm_flowers", Area: TileRect{X: 6, Y: 2, W: 1, H: 1}, Lines: farmFlowerLines1},
			{Kind: "farm_flowers", Area: TileRect{X: 8, Y: 4, W: 1, H: 1}, Lines: farmFlowerLines2},
		},
		Margins: map[string]int{
			"farm_flowers":  25,
			"garden_flower": 30,
			"farm":          35,
			"house":         40,
		},
		NPCs: []NPCConfig{
			{Name: "breeder", Position: PointConfig{X: 1*t + 32, Y: 6*t + 32}, Lines: []string{
				"Hello there, traveler!",
				"I'm the village breeder.",
				"I take care of the animals around here.",
			}},
			{Name: "fisher", Position: PointConfig{X: 4*t + 32, Y: 1*t + 32}, Lines: []string{
				"Good day, friend!",
				"The fish are biting well today.",
				"Would you like to learn about fishing?",
			}},
		},
		Objects: []ObjectConfig{
			{Archetype: "dog", Position: PointConfig{X: 4 * t, Y: 6*t + 50}, PatrolWidth: 300},
			{Archetype: "flowers", Variant: "garden", Position: PointConfig{X: 4*t + 40, Y: 5*t + 40}, Lines: gardenFlowerLines},
			{Archetype: "flowers", Variant: "garden", Position: PointConfig{X: 6*t + 40, Y: 6*t + 40}, Lines: gardenFlowerLines},
			{Archetype: "flowers", Variant: "farm", Position: PointConfig{X: 6*t + 35, Y: 2*t + 35}, Lines: farmFlowerLines1},
			{Archetype: "flowers", Variant: "farm", Position: PointConfig{X: 8*t + 35, Y: 4*t + 35}, Lines: farmFlowerLines2},
		},
	}
}

var gardenFlowerLines = []string{
	"Beautiful flowers bloom here in vibrant colors.",
	"The sweet fragrance fills the air.",
	"These flowers attract butterflies and bees.",
}

var farmFlowerLines1 = []string{
	"These lovely flowers brighten up the farm area.",
	"Pink, yellow, and coral blooms dance in the breeze.",
	"The flowers seem well-tended and healthy.",
}

var farmFlowerLines2 = []string{
	"A colorful patch of flowers adds beauty to this corner.",
	"The farmer must have a soft spot for flowers.",
	"These blooms provide a nice contrast to the crops.",
}

// DefaultWorldYAML returns the embedded default world file.
func DefaultWorldYAML() []byte {
	return defaultWorldYAML
}
