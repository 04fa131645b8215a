package core

// RuntimeConfig contains configuration passed to the world at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second requested from the platform (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState summarises the world for the platform after each frame.
type GameState struct {
	Quit           bool // Player asked to leave
	NearTarget     bool // An interactable is in range this frame
	DialogueActive bool // The dialogue box is open
}

// StepResult is returned by Step() after each frame.
type StepResult struct {
	State GameState
}
