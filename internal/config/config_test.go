package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wordhunt/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML Options
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	def := DefaultOptions()
	if fromYAML.GridSize != def.GridSize ||
		fromYAML.MinWordLength != def.MinWordLength ||
		fromYAML.TargetWordCount != def.TargetWordCount ||
		fromYAML.TargetMinLength != def.TargetMinLength ||
		fromYAML.TimeLimitSeconds != def.TimeLimitSeconds ||
		fromYAML.MaxAttempts != def.MaxAttempts ||
		fromYAML.Alphabet != def.Alphabet ||
		len(fromYAML.Directions) != len(def.Directions) {
		t.Errorf("embedded YAML = %+v, want %+v", fromYAML, def)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("grid_size: 5\ntarget_word_count: 3\ntime_limit_seconds: 60\ndirections: [E, S]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.GridSize != 5 || cfg.TargetWordCount != 3 {
		t.Errorf("Load() = %+v, want grid 5 and 3 targets", cfg)
	}
	if cfg.TimeLimit().Seconds() != 60 || !cfg.Timed() {
		t.Errorf("TimeLimit() = %v, want 60s", cfg.TimeLimit())
	}
	// Missing keys fall back to defaults.
	if cfg.MinWordLength != 3 || cfg.MaxAttempts != 100 || cfg.Alphabet == "" {
		t.Errorf("defaults not filled: %+v", cfg)
	}

	dirs, err := cfg.Dirs()
	if err != nil {
		t.Fatalf("Dirs failed: %v", err)
	}
	if len(dirs) != 2 || dirs[0] != core.DirE || dirs[1] != core.DirS {
		t.Errorf("Dirs() = %v, want [E S]", dirs)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid_size: [oops"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load should fail for malformed YAML")
	}

	small := filepath.Join(t.TempDir(), "small.yaml")
	if err := os.WriteFile(small, []byte("grid_size: 2\nmin_word_length: 3\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(small); !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("Load(small) error = %v, want ErrGridTooSmall", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr error
	}{
		{"defaults", func(*Options) {}, nil},
		{"grid equals min length", func(o *Options) { o.GridSize = 3 }, nil},
		{"grid too small", func(o *Options) { o.GridSize = 2 }, ErrGridTooSmall},
		{"zero min length", func(o *Options) { o.MinWordLength = 0 }, ErrInvalidOptions},
		{"negative targets", func(o *Options) { o.TargetWordCount = -1 }, ErrInvalidOptions},
		{"negative time", func(o *Options) { o.TimeLimitSeconds = -5 }, ErrInvalidOptions},
		{"empty alphabet", func(o *Options) { o.Alphabet = " " }, ErrInvalidOptions},
		{"digit in alphabet", func(o *Options) { o.Alphabet = "AB1" }, ErrInvalidOptions},
		{"bad direction", func(o *Options) { o.Directions = []string{"UP"} }, ErrInvalidOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(&o)
			err := o.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		input    string
		preset   DifficultyPreset
		gridSize int
		timed    bool
	}{
		{"", DifficultyMedium, 8, false},
		{"easy", DifficultyEasy, 6, false},
		{"MEDIUM", DifficultyMedium, 8, false},
		{"normal", DifficultyMedium, 8, false},
		{"hard", DifficultyHard, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			preset, err := ParsePreset(tt.input)
			if err != nil {
				t.Fatalf("ParsePreset(%q) failed: %v", tt.input, err)
			}
			if preset != tt.preset {
				t.Errorf("ParsePreset(%q) = %s, want %s", tt.input, preset, tt.preset)
			}

			o := DefaultOptions()
			ApplyPreset(&o, preset)
			if o.GridSize != tt.gridSize || o.Timed() != tt.timed {
				t.Errorf("ApplyPreset(%s) = grid %d timed %v, want %d %v",
					preset, o.GridSize, o.Timed(), tt.gridSize, tt.timed)
			}
			if err := o.Validate(); err != nil {
				t.Errorf("preset %s fails validation: %v", preset, err)
			}
		})
	}

	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestCustomPresetKeepsOptions(t *testing.T) {
	preset, err := ParsePreset("Custom")
	if err != nil || preset != DifficultyCustom {
		t.Fatalf("ParsePreset(Custom) = %v, %v", preset, err)
	}

	o := DefaultOptions()
	o.GridSize = 12
	o.TargetWordCount = 3
	o.TimeLimitSeconds = 30
	want := o

	ApplyPreset(&o, preset)
	if o.GridSize != want.GridSize || o.TargetWordCount != want.TargetWordCount ||
		o.TimeLimitSeconds != want.TimeLimitSeconds {
		t.Errorf("ApplyPreset(custom) = %+v, want %+v", o, want)
	}
}

func TestPresetsEndWithCustom(t *testing.T) {
	if Presets[len(Presets)-1] != DifficultyCustom {
		t.Errorf("Presets = %v, want custom last", Presets)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}
