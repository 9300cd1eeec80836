package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordhunt/internal/config"
	"github.com/vovakirdan/wordhunt/internal/core"
	"github.com/vovakirdan/wordhunt/internal/platform/tui"
	"github.com/vovakirdan/wordhunt/internal/storage"
)

var (
	flagDifficulty string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play word hunt",
	Long: `Start a game in this terminal. Without --difficulty a menu lets you
pick one; Tab on the menu opens the scoreboard.

Controls:
  Arrows/WASD  - Move cursor
  Space        - Select letter (on the last letter: undo it)
  Backspace/X  - Undo last letter
  Enter        - Submit word
  Mouse        - Click or drag across letters
  E            - End game
  R            - New board
  Esc          - Back to menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 6x6 grid, 6 hidden words, no time limit
  medium - 8x8 grid, 10 hidden words, no time limit
  hard   - 10x10 grid, 14 hidden words, 3 minutes
  custom - grid, words and time limit exactly as in the options YAML

Examples:
  wordhunt play
  wordhunt play --difficulty easy
  wordhunt play --seed 42 --difficulty hard
  wordhunt play --config ./my-wordhunt.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard, custom")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with results")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// Logs would tear the alt screen, so they go to --log-file or nowhere.
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	var difficulty config.DifficultyPreset
	if cmd.Flags().Changed("difficulty") {
		if difficulty, err = config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}

	opts, err := loadOptions()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	dict, err := loadDictionary(opts)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.Seed = flagSeed

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Play without saving results.
		store = nil
	} else {
		defer store.Close()
	}

	deps := tui.Deps{
		Options: opts,
		Dict:    dict,
		Store:   store,
		Logger:  logger,
		Player:  flagPlayer,
	}
	if err := tui.Run(deps, cfg, difficulty); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
