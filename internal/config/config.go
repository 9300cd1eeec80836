// Package config provides YAML-based game configuration loading and
// difficulty presets for word hunt.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/wordhunt/internal/core"
)

var (
	// ErrGridTooSmall means no word of the minimum length can fit on the grid.
	ErrGridTooSmall = errors.New("config: grid too small for minimum word length")

	// ErrInvalidOptions wraps every other validation failure.
	ErrInvalidOptions = errors.New("config: invalid options")
)

// Options contains all configuration for a word hunt session.
type Options struct {
	GridSize         int      `yaml:"grid_size"`
	MinWordLength    int      `yaml:"min_word_length"`
	TargetWordCount  int      `yaml:"target_word_count"`
	TargetMinLength  int      `yaml:"target_min_length"`
	TimeLimitSeconds int      `yaml:"time_limit_seconds"` // 0 = unbounded
	MaxAttempts      int      `yaml:"max_attempts"`
	Alphabet         string   `yaml:"alphabet"`
	Directions       []string `yaml:"directions"`
	DictionaryPath   string   `yaml:"dictionary_path"`
}

// TimeLimit returns the session duration, or 0 when unbounded.
func (o Options) TimeLimit() time.Duration {
	if o.TimeLimitSeconds <= 0 {
		return 0
	}
	return time.Duration(o.TimeLimitSeconds) * time.Second
}

// Timed reports whether sessions end on a clock.
func (o Options) Timed() bool {
	return o.TimeLimitSeconds > 0
}

// Dirs parses the configured directions.
// An empty list means all eight.
func (o Options) Dirs() ([]core.Dir, error) {
	if len(o.Directions) == 0 {
		return core.AllDirs, nil
	}
	return core.ParseDirs(o.Directions)
}

// Validate checks the options for values the engine cannot work with.
func (o Options) Validate() error {
	if o.MinWordLength < 1 {
		return fmt.Errorf("%w: min_word_length must be positive, got %d", ErrInvalidOptions, o.MinWordLength)
	}
	if o.GridSize < o.MinWordLength {
		return fmt.Errorf("%w: grid_size %d < min_word_length %d", ErrGridTooSmall, o.GridSize, o.MinWordLength)
	}
	if o.TargetWordCount < 0 {
		return fmt.Errorf("%w: target_word_count must not be negative", ErrInvalidOptions)
	}
	if o.TimeLimitSeconds < 0 {
		return fmt.Errorf("%w: time_limit_seconds must not be negative", ErrInvalidOptions)
	}
	if strings.TrimSpace(o.Alphabet) == "" {
		return fmt.Errorf("%w: alphabet is empty", ErrInvalidOptions)
	}
	for _, r := range strings.ToUpper(o.Alphabet) {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("%w: alphabet contains %q", ErrInvalidOptions, r)
		}
	}
	if _, err := o.Dirs(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// fillDefaults replaces zero values left by a partial YAML file.
func (o *Options) fillDefaults() {
	def := DefaultOptions()
	if o.GridSize == 0 {
		o.GridSize = def.GridSize
	}
	if o.MinWordLength == 0 {
		o.MinWordLength = def.MinWordLength
	}
	if o.TargetMinLength == 0 {
		o.TargetMinLength = def.TargetMinLength
	}
	if o.MaxAttempts == 0 {
		o.MaxAttempts = def.MaxAttempts
	}
	if o.Alphabet == "" {
		o.Alphabet = def.Alphabet
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"

	// DifficultyCustom plays the options exactly as loaded.
	DifficultyCustom DifficultyPreset = "custom"
)

// Presets lists the known presets in increasing difficulty, then custom.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyCustom}

// ParsePreset converts a flag value to a preset. Empty means medium.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyMedium, "normal":
		return DifficultyMedium, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	case DifficultyCustom:
		return DifficultyCustom, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium, hard or custom)", s)
	}
}

// ApplyPreset modifies the options based on a difficulty preset.
// DifficultyCustom leaves them untouched.
func ApplyPreset(o *Options, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		o.GridSize = 6
		o.TargetWordCount = 6
		o.TimeLimitSeconds = 0
	case DifficultyMedium:
		o.GridSize = 8
		o.TargetWordCount = 10
		o.TimeLimitSeconds = 0
	case DifficultyHard:
		o.GridSize = 10
		o.TargetWordCount = 14
		o.TimeLimitSeconds = 180
	}
}
