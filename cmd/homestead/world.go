package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-homestead/internal/config"
)

var flagDump bool

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "Show the world configuration",
	Long: `Resolves the world file the same way 'play' does and prints a summary.
With --dump the effective configuration is printed as YAML, which is a
good starting point for a custom world.

Search order:
  --config <path>
  ~/.homestead/world.yaml
  ./configs/world.yaml
  built-in default`,
	Args: cobra.NoArgs,
	RunE: runWorld,
}

func init() {
	worldCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the effective world as YAML")
}

func runWorld(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadWorld()
	if err != nil {
		return err
	}

	if flagDump {
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	interior := cfg.Grid.Interior()
	fmt.Printf("World %q (from %s)\n", cfg.Name, source)
	fmt.Println()
	fmt.Printf("  Grid:      %dx%d tiles of %d px, %d water\n",
		cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.TileSize, cfg.Grid.Border)
	fmt.Printf("  Walkable:  (%d, %d) to (%d, %d)\n",
		interior.X, interior.Y, interior.Right(), interior.Bottom())
	fmt.Printf("  Player:    start (%.0f, %.0f), speed %.0f\n",
		cfg.Player.Start.X, cfg.Player.Start.Y, cfg.Player.Speed)
	fmt.Printf("  Obstacles: %d\n", len(cfg.Obstacles))
	fmt.Println()

	fmt.Println("  Zones:")
	for _, z := range cfg.Zones {
		fmt.Printf("    %-14s tiles (%d, %d) %dx%d, %d lines\n",
			z.Kind, z.Area.X, z.Area.Y, z.Area.W, z.Area.H, len(z.Lines))
	}
	fmt.Println("  NPCs:")
	for _, n := range cfg.NPCs {
		fmt.Printf("    %-14s at (%.0f, %.0f), %d lines\n",
			n.Name, n.Position.X, n.Position.Y, len(n.Lines))
	}
	fmt.Println("  Objects:")
	for _, o := range cfg.Objects {
		name := o.Archetype
		if o.Variant != "" {
			name += "/" + o.Variant
		}
		fmt.Printf("    %-14s at (%.0f, %.0f)\n", name, o.Position.X, o.Position.Y)
	}
	return nil
}
