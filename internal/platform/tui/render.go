package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordhunt/internal/board"
	"github.com/vovakirdan/wordhunt/internal/core"
	"github.com/vovakirdan/wordhunt/internal/session"
)

// Board layout. Mouse hit-testing depends on these staying in sync with
// renderGame: the grid starts gridTop lines down, gridLeft columns in, and
// each cell is cellWidth wide followed by one space.
const (
	gridTop   = 3
	gridLeft  = 2
	cellWidth = 3
	cellStep  = cellWidth + 1
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("255"))
	selectedCellStyle = cellStyle.
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("33"))
	cursorCellStyle = cellStyle.
			Background(lipgloss.Color("229")).
			Underline(true)
	hintCellStyle = cellStyle.
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("34"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	foundWordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	missedWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// cellAt maps a terminal coordinate to a grid position.
func cellAt(x, y, size int) (core.Pos, bool) {
	if x < gridLeft || y < gridTop {
		return core.Pos{}, false
	}
	dx := x - gridLeft
	if dx%cellStep >= cellWidth {
		return core.Pos{}, false // gap between cells
	}
	p := core.P(y-gridTop, dx/cellStep)
	if p.Row >= size || p.Col >= size {
		return core.Pos{}, false
	}
	return p, true
}

// renderGrid draws the letter grid. style picks the look of each cell.
func renderGrid(g *core.Grid, style func(core.Pos) lipgloss.Style) string {
	var b strings.Builder
	margin := strings.Repeat(" ", gridLeft)
	for r := 0; r < g.Size(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(margin)
		for c := 0; c < g.Size(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			p := core.P(r, c)
			b.WriteString(style(p).Render(string(g.At(p))))
		}
	}
	return b.String()
}

// renderGame draws the in-play screen.
func renderGame(e *session.Engine, cursor core.Pos, last *session.Result, difficulty string) string {
	var b strings.Builder

	// Line 0: title. Line 1: status. Line 2: blank. Grid from gridTop.
	b.WriteString(titleStyle.Render(fmt.Sprintf("  WORD HUNT  [%s]", difficulty)))
	b.WriteString("\n")
	b.WriteString(renderStatus(e))
	b.WriteString("\n\n")

	grid := renderGrid(e.Board().Grid, func(p core.Pos) lipgloss.Style {
		switch {
		case p == cursor:
			return cursorCellStyle
		case e.IsSelected(p):
			return selectedCellStyle
		default:
			return cellStyle
		}
	})

	side := panelStyle.Render(renderTargets(e))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, grid, "   ", side))
	b.WriteString("\n\n")

	word := e.CurrentWord()
	if word == "" {
		word = dimStyle.Render("Select letters")
	}
	b.WriteString("  Word: " + word)
	b.WriteString("\n")
	b.WriteString("  " + renderLastResult(last))
	return b.String()
}

// renderStatus draws score, word count, progress, and the clock.
func renderStatus(e *session.Engine) string {
	p := e.Progress()
	status := fmt.Sprintf("  Score: %d   Words: %d   Targets: %d/%d",
		e.Score(), len(e.FoundWords()), p.Found, p.Total)
	if e.Options().Timed() {
		status += "   Time: " + formatClock(e.Remaining())
	}
	return status
}

// renderTargets lists the target words, marking found ones.
func renderTargets(e *session.Engine) string {
	targets := e.TargetWords()
	if len(targets) == 0 {
		return dimStyle.Render("No words could be hidden.\nPress r for a new board.")
	}

	var b strings.Builder
	b.WriteString("Find:\n")
	for _, w := range targets {
		if e.IsFound(w) {
			b.WriteString(foundWordStyle.Render("✓ " + w))
		} else {
			b.WriteString("  " + w)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderLastResult shows the outcome of the most recent submission.
func renderLastResult(last *session.Result) string {
	if last == nil || last.Word == "" {
		return ""
	}
	msg := fmt.Sprintf("%s: %s", last.Word, last.Kind)
	if last.Kind.Accepted() {
		return goodStyle.Render(fmt.Sprintf("%s (+%d)", msg, last.Points))
	}
	return badStyle.Render(msg)
}

// renderSummary draws the game-over screen.
func renderSummary(s session.Summary, difficulty string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("  Game Complete!"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "  Your score: %d\n", s.Score)
	fmt.Fprintf(&b, "  Target words found: %d/%d (%d%%)\n",
		s.Progress.Found, s.Progress.Total, s.Progress.Percentage)
	fmt.Fprintf(&b, "  Total words found: %d\n\n", len(s.Found))

	if len(s.Targets) > 0 {
		missed := make(map[string]bool, len(s.Missed))
		for _, w := range s.Missed {
			missed[w] = true
		}
		words := make([]string, len(s.Targets))
		for i, w := range s.Targets {
			if missed[w] {
				words[i] = missedWordStyle.Render(w)
			} else {
				words[i] = foundWordStyle.Render(w)
			}
		}
		b.WriteString("  Target words:\n  ")
		b.WriteString(strings.Join(words, "  "))
		b.WriteString("\n\n")
	}

	b.WriteString("  All found words:\n  ")
	if len(s.Found) == 0 {
		b.WriteString(dimStyle.Render("none"))
	} else {
		b.WriteString(strings.Join(s.Found, ", "))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  r: new game   esc: menu   q: quit"))
	return b.String()
}

// formatClock renders a duration as M:SS.
func formatClock(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// RenderBoard draws a generated board for the CLI. With hints, placed
// words are highlighted.
func RenderBoard(b *board.Board, hints bool) string {
	onWord := make(map[core.Pos]bool)
	if hints {
		for _, p := range b.Placements {
			for _, pos := range p.Positions {
				onWord[pos] = true
			}
		}
	}
	return renderGrid(b.Grid, func(p core.Pos) lipgloss.Style {
		if onWord[p] {
			return hintCellStyle
		}
		return cellStyle
	})
}
