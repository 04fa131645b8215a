package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/homestead"
	"github.com/vovakirdan/tui-homestead/internal/platform/tui"
)

var flagMoveHold int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Walk around the world",
	Long: `Start the homestead.

Controls:
  WASD/Arrows   - Walk
  Space/Enter   - Talk to whatever is nearby
  E             - Next line
  Q/Esc         - Close the dialogue
  ?             - Toggle help
  Ctrl+S        - Save a text screenshot
  Ctrl+C        - Quit

Pace options:
  relaxed   - Slower walking, sleepier dog
  normal    - Default speeds
  brisk     - Everyone hurries

Examples:
  homestead play
  homestead play --pace relaxed
  homestead play --config ./my-world.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagMoveHold, "move-hold", 0, "Frames a movement key stays held after its last repeat (0 = default)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	world, source, err := loadWorld()
	if err != nil {
		return err
	}
	logger.Info("config", "source", source, "pace", flagPace)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := homestead.New(world, logger)
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg, tui.Options{MoveHold: flagMoveHold, Logger: logger}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
