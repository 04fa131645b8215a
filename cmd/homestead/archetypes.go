package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-homestead/internal/registry"
)

var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List object archetypes",
	Long:  `Shows the archetypes a world file may spawn under "objects".`,
	Args:  cobra.NoArgs,
	Run:   runArchetypes,
}

func runArchetypes(cmd *cobra.Command, args []string) {
	archetypes := registry.List()

	if len(archetypes) == 0 {
		fmt.Println("No archetypes registered.")
		return
	}

	fmt.Println("Available archetypes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, a := range archetypes {
		maxIDLen = max(maxIDLen, len(a.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, a := range archetypes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, a.ID, a.Title)
	}

	fmt.Println()
	fmt.Println("Use them in world.yaml, e.g. '- archetype: dog'.")
}
