// Package tui runs the homestead in the terminal with Bubble Tea: it turns
// key presses into world actions, drives the frame loop from tick messages
// and draws the world's screen buffer with lipgloss colors.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxFrameDelta caps the simulated time of one frame, so a stalled terminal
// does not teleport the player through walls.
const MaxFrameDelta = 0.1

// TickMsg is sent to trigger a world frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick, and any
// tick that arrives out of order, counts as one nominal frame.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	nominal := 1 / float64(tickRate)
	if prev.IsZero() || !now.After(prev) {
		return nominal
	}
	return min(now.Sub(prev).Seconds(), MaxFrameDelta)
}
