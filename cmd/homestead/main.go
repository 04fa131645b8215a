// homestead is a small top-down tile world played in the terminal: walk
// around the island, bump into the house and talk to whoever is nearby.
//
// Usage:
//
//	homestead play         - Walk around the world
//	homestead world        - Show the world that would be loaded
//	homestead archetypes   - List object archetypes usable in world files
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--config <path>   - Load a custom world.yaml
//	--pace <preset>   - relaxed, normal or brisk
//	--log <path>      - Write logs to a file
//	--debug           - Log debug events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagPace    string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "homestead",
	Short: "Homestead - a little tile world in your terminal",
	Long: `Homestead is a top-down tile world played in the terminal.
Walk around the island, visit the house, the farm and the garden, and
talk to the villagers and their dog.

Available commands:
  play         - Walk around the world
  world        - Show or dump the world configuration
  archetypes   - List object archetypes for world files

Examples:
  homestead play
  homestead play --pace brisk
  homestead world --dump > my-world.yaml
  homestead play --config ./my-world.yaml --log homestead.log --debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom world YAML")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "Pace preset: relaxed, normal, brisk")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug events")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(worldCmd)
	rootCmd.AddCommand(archetypesCmd)
}
