package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-homestead/internal/config"
)

// newLogger opens the --log file. Without it logs are discarded, since the
// alternate screen owns the terminal while playing. The returned close
// function is never nil.
func newLogger() (*log.Logger, func() error, error) {
	noop := func() error { return nil }
	if flagLogPath == "" {
		return log.New(io.Discard), noop, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("open log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "homestead",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f.Close, nil
}

// loadWorld resolves the world file and applies the pace preset.
func loadWorld() (config.WorldConfig, string, error) {
	pace, err := config.ParsePace(flagPace)
	if err != nil {
		return config.WorldConfig{}, "", err
	}
	cfg, source, err := config.LoadWorld(flagConfig)
	if err != nil {
		return config.WorldConfig{}, "", err
	}
	config.ApplyPace(&cfg, pace)
	return cfg, source, nil
}
