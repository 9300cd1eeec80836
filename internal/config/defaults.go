package config

import (
	_ "embed"

	"github.com/vovakirdan/wordhunt/internal/board"
)

//go:embed defaults/wordhunt.yaml
var defaultYAML []byte

// DefaultOptions returns the built-in configuration.
func DefaultOptions() Options {
	return Options{
		GridSize:         8,
		MinWordLength:    3,
		TargetWordCount:  10,
		TargetMinLength:  4,
		TimeLimitSeconds: 0,
		MaxAttempts:      board.DefaultMaxAttempts,
		Alphabet:         board.DefaultAlphabet,
		Directions:       []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
