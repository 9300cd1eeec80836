// wordhunt is a word search puzzle for the terminal.
//
// Usage:
//
//	wordhunt play              - Play locally (menu, or --difficulty to jump in)
//	wordhunt serve             - Start SSH server for remote play
//	wordhunt generate          - Print a generated board and where its words are
//	wordhunt scores [level]    - Show saved results
//	wordhunt words             - Show dictionary statistics
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Set database path (default: ~/.wordhunt/scores.db)
//	--config <path>    - Use a custom options YAML
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordhunt/internal/config"
	"github.com/vovakirdan/wordhunt/internal/dictionary"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordhunt",
	Short: "Word Hunt - find hidden words in a letter grid",
	Long: `Word Hunt hides words in a square grid of letters. Trace a path of
adjacent letters to spell a word, then submit it. Hidden target words
score a length bonus; any other dictionary word still counts.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  generate  - Print a generated board
  scores    - View saved results
  words     - Dictionary statistics

Examples:
  wordhunt play
  wordhunt play --difficulty hard
  wordhunt serve --ssh :2222
  wordhunt generate --size 10 --words CAT,DOG --seed 7 --verify
  wordhunt scores easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordhunt/scores.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom options YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wordsCmd)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordhunt",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogger returns a logger for --log-file, or one writing to fallback.
// The returned closer must be called when done.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(fallback), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

// loadOptions loads the options YAML following the usual search order.
func loadOptions() (config.Options, error) {
	return config.Load(flagConfig)
}

// loadDictionary returns the configured word list, or the embedded one.
func loadDictionary(opts config.Options) (*dictionary.Set, error) {
	if opts.DictionaryPath == "" {
		return dictionary.Default(), nil
	}
	return dictionary.Load(opts.DictionaryPath)
}
