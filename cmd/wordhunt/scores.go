package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordhunt/internal/config"
	"github.com/vovakirdan/wordhunt/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show saved results",
	Long: `Display the best saved results. With a difficulty only that level is
shown; without one every level is listed.

Examples:
  wordhunt scores
  wordhunt scores hard
  wordhunt scores easy --limit 25`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func runScores(_ *cobra.Command, args []string) error {
	var difficulty string
	if len(args) == 1 {
		preset, err := config.ParsePreset(args[0])
		if err != nil {
			return err
		}
		difficulty = string(preset)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	results, err := store.TopResults(difficulty, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	title := "all levels"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n\n", title)

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'wordhunt play' to set the first high score!")
		return nil
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.Difficulty,
			fmt.Sprintf("%d/%d", r.TargetsFound, r.TargetsTotal),
			strings.Join(r.WordsFound, " "),
			r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Score", "Level", "Targets", "Words", "Player", "Date").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Println(t.Render())

	if high, err := store.HighScore(difficulty); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
	return nil
}
