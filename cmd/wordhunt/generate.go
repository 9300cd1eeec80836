package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordhunt/internal/board"
	"github.com/vovakirdan/wordhunt/internal/dictionary"
	"github.com/vovakirdan/wordhunt/internal/platform/tui"
)

var (
	flagGenSize   int
	flagGenWords  string
	flagGenCount  int
	flagGenVerify bool
	flagGenHints  bool
	flagGenPlain  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated board",
	Long: `Generate a board and print it with the position and direction of every
word that was placed. Words that did not fit are listed separately.

Without --words, target words are sampled from the dictionary the same
way a game picks them.

Examples:
  wordhunt generate
  wordhunt generate --size 6 --words CAT,DOG,BIRD --seed 7
  wordhunt generate --count 14 --size 10 --hints
  wordhunt generate --plain --verify`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagGenSize, "size", 0, "Grid size (default from config)")
	generateCmd.Flags().StringVar(&flagGenWords, "words", "", "Comma-separated words to hide")
	generateCmd.Flags().IntVar(&flagGenCount, "count", 0, "Number of dictionary words to sample (default from config)")
	generateCmd.Flags().BoolVar(&flagGenVerify, "verify", false, "Check placement invariants and fail if any is broken")
	generateCmd.Flags().BoolVar(&flagGenHints, "hints", false, "Highlight cells that belong to a placed word")
	generateCmd.Flags().BoolVar(&flagGenPlain, "plain", false, "Print letters without styling")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr)

	opts, err := loadOptions()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagGenSize > 0 {
		opts.GridSize = flagGenSize
	}
	if flagGenCount > 0 {
		opts.TargetWordCount = flagGenCount
	}
	dirs, err := opts.Dirs()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var words []string
	if flagGenWords != "" {
		words = strings.Split(flagGenWords, ",")
	} else {
		dict, dictErr := loadDictionary(opts)
		if dictErr != nil {
			return fmt.Errorf("loading dictionary: %w", dictErr)
		}
		words = dict.Sample(rng, opts.TargetWordCount, opts.TargetMinLength)
	}

	b, err := board.Generate(words, opts.GridSize, rng,
		board.WithAlphabet(opts.Alphabet),
		board.WithDirections(dirs),
		board.WithMaxAttempts(opts.MaxAttempts),
		board.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	// Styled cells are unreadable once piped, so plain output is forced.
	if flagGenPlain || !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(b.Grid.String())
	} else {
		fmt.Println(tui.RenderBoard(b, flagGenHints))
	}
	fmt.Println()
	fmt.Printf("Seed: %d\n", seed)
	fmt.Println()

	fmt.Printf("  %-12s  %-8s  %s\n", "Word", "Start", "Dir")
	fmt.Printf("  %-12s  %-8s  %s\n", "----", "-----", "---")
	for _, p := range b.Placements {
		fmt.Printf("  %-12s  %-8s  %s\n", p.Word, p.Start, p.Dir)
	}

	if dropped := droppedWords(words, b); len(dropped) > 0 {
		fmt.Println()
		fmt.Printf("Not placed: %s\n", strings.Join(dropped, ", "))
	}

	if flagGenVerify {
		if err := b.Verify(); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		fmt.Println()
		fmt.Println("Verify: ok")
	}
	return nil
}

// droppedWords lists requested words that have no placement.
func droppedWords(words []string, b *board.Board) []string {
	var dropped []string
	seen := make(map[string]bool)
	for _, w := range words {
		w = dictionary.Normalize(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		if _, ok := b.Placement(w); !ok {
			dropped = append(dropped, w)
		}
	}
	return dropped
}
