package board

import (
	"fmt"

	"github.com/vovakirdan/wordhunt/internal/core"
)

// ValidationError contains details about a structural violation.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Verify checks the structural guarantees of a generated board:
//   - every cell holds a letter from A to Z
//   - every placement reads back its word along a straight adjacent run
//   - no word is placed twice
func (b *Board) Verify() error {
	if b.Grid == nil {
		return ValidationError{Code: "NO_GRID", Message: "board has no grid"}
	}
	if !b.Grid.Filled() {
		return ValidationError{Code: "EMPTY_CELL", Message: "grid has unassigned cells"}
	}
	for r := 0; r < b.Grid.Size(); r++ {
		for c := 0; c < b.Grid.Size(); c++ {
			if ch := b.Grid.At(core.P(r, c)); ch < 'A' || ch > 'Z' {
				return ValidationError{
					Code:    "NOT_A_LETTER",
					Message: fmt.Sprintf("cell (%d,%d) holds %q", r, c, ch),
				}
			}
		}
	}

	seen := make(map[string]bool, len(b.Placements))
	for _, p := range b.Placements {
		if seen[p.Word] {
			return ValidationError{
				Code:    "DUPLICATE_WORD",
				Message: fmt.Sprintf("word %s placed more than once", p.Word),
			}
		}
		seen[p.Word] = true

		if err := verifyPlacement(b.Grid, p); err != nil {
			return err
		}
	}
	return nil
}

func verifyPlacement(g *core.Grid, p Placement) error {
	if len(p.Positions) != len(p.Word) {
		return ValidationError{
			Code:    "LENGTH_MISMATCH",
			Message: fmt.Sprintf("word %s has %d positions", p.Word, len(p.Positions)),
		}
	}

	for i, pos := range p.Positions {
		if pos != p.Start.Step(p.Dir, i) {
			return ValidationError{
				Code:    "NOT_STRAIGHT",
				Message: fmt.Sprintf("word %s leaves its %s run at %v", p.Word, p.Dir, pos),
			}
		}
		if !g.InBounds(pos) {
			return ValidationError{
				Code:    "OUT_OF_BOUNDS",
				Message: fmt.Sprintf("word %s runs off the grid at %v", p.Word, pos),
			}
		}
	}

	if got := g.Word(p.Positions); got != p.Word {
		return ValidationError{
			Code:    "WRONG_LETTERS",
			Message: fmt.Sprintf("placement of %s reads %s", p.Word, got),
		}
	}
	return nil
}
