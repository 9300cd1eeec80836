package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	flagWordsMinLength int
	flagWordsList      bool
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show dictionary statistics",
	Long: `Print how many dictionary words there are of each length. Games pick
hidden words from lengths at or above the configured target minimum.

Examples:
  wordhunt words
  wordhunt words --min-length 5 --list`,
	Args: cobra.NoArgs,
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().IntVar(&flagWordsMinLength, "min-length", 0, "Only count words at least this long")
	wordsCmd.Flags().BoolVar(&flagWordsList, "list", false, "Also print the words")
}

func runWords(_ *cobra.Command, _ []string) error {
	opts, err := loadOptions()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	dict, err := loadDictionary(opts)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	counts := dict.CountByLength()
	lengths := make([]int, 0, len(counts))
	for l := range counts {
		if l >= flagWordsMinLength {
			lengths = append(lengths, l)
		}
	}
	sort.Ints(lengths)

	total := 0
	rows := make([][]string, 0, len(lengths))
	for _, l := range lengths {
		total += counts[l]
		rows = append(rows, []string{fmt.Sprintf("%d", l), fmt.Sprintf("%d", counts[l])})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Length", "Words").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Println(t.Render())
	fmt.Printf("\nTotal: %d words\n", total)
	fmt.Printf("Target minimum length: %d\n", opts.TargetMinLength)

	if flagWordsList {
		fmt.Println()
		for _, w := range dict.Words() {
			if len(w) >= flagWordsMinLength {
				fmt.Println(w)
			}
		}
	}
	return nil
}
