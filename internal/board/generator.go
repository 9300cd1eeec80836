// Package board builds word-search grids.
//
// Generation is best-effort: words are attempted longest first, each with a
// bounded number of random placements, and any word that cannot be fitted is
// dropped. Callers must treat Board.Placements, not the requested list, as the
// set of findable words.
package board

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordhunt/internal/core"
)

// DefaultAlphabet is the filler alphabet for unplaced cells.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// DefaultMaxAttempts is the per-word placement budget.
const DefaultMaxAttempts = 100

var (
	ErrInvalidSize   = errors.New("board: grid size must be positive")
	ErrEmptyAlphabet = errors.New("board: alphabet is empty")
	ErrNoDirections  = errors.New("board: no placement directions")
)

// Placement records where a word was embedded in the grid.
type Placement struct {
	Word      string
	Start     core.Pos
	Dir       core.Dir
	Positions []core.Pos
}

// Board is the result of a generation run.
type Board struct {
	Grid       *core.Grid
	Placements []Placement
}

// Words returns the placed words in placement order.
func (b *Board) Words() []string {
	words := make([]string, len(b.Placements))
	for i, p := range b.Placements {
		words[i] = p.Word
	}
	return words
}

// Placement returns the placement for a word, if it was placed.
func (b *Board) Placement(word string) (Placement, bool) {
	for _, p := range b.Placements {
		if p.Word == word {
			return p, true
		}
	}
	return Placement{}, false
}

// Option configures a generation run.
type Option func(*params)

type params struct {
	alphabet    string
	dirs        []core.Dir
	maxAttempts int
	logger      *log.Logger
}

// WithAlphabet sets the filler alphabet.
func WithAlphabet(alphabet string) Option {
	return func(p *params) { p.alphabet = strings.ToUpper(alphabet) }
}

// WithDirections restricts the directions words may run in.
func WithDirections(dirs []core.Dir) Option {
	return func(p *params) { p.dirs = dirs }
}

// WithMaxAttempts sets the per-word placement budget.
func WithMaxAttempts(n int) Option {
	return func(p *params) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used to report dropped words.
func WithLogger(l *log.Logger) Option {
	return func(p *params) {
		if l != nil {
			p.logger = l
		}
	}
}

// Generate builds a size×size grid hiding as many of words as it can.
// The rng is the only source of randomness, so a seeded rng yields a
// reproducible board.
func Generate(words []string, size int, rng *rand.Rand, opts ...Option) (*Board, error) {
	p := params{
		alphabet:    DefaultAlphabet,
		dirs:        core.AllDirs,
		maxAttempts: DefaultMaxAttempts,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&p)
	}

	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if p.alphabet == "" {
		return nil, ErrEmptyAlphabet
	}
	if len(p.dirs) == 0 {
		return nil, ErrNoDirections
	}

	grid := core.NewGrid(size)
	b := &Board{Grid: grid}

	for _, word := range orderWords(words, size, rng) {
		placement, ok := place(grid, word, rng, p)
		if !ok {
			p.logger.Debug("dropped word", "word", word, "attempts", p.maxAttempts)
			continue
		}
		b.Placements = append(b.Placements, placement)
	}

	fill(grid, p.alphabet, rng)
	return b, nil
}

// orderWords normalizes the request, skips words that are not plain A-Z or
// cannot fit on the grid, and sorts longest first. Equal-length words keep
// their shuffled order.
func orderWords(words []string, size int, rng *rand.Rand) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || !isLetters(w) || len(w) > size || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}

	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// isLetters reports whether w holds only the letters A-Z, one byte per cell.
func isLetters(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// place tries random starts and directions until the word fits.
func place(grid *core.Grid, word string, rng *rand.Rand, p params) (Placement, bool) {
	size := grid.Size()
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		dir := p.dirs[rng.Intn(len(p.dirs))]
		start := core.P(rng.Intn(size), rng.Intn(size))

		if !fits(grid, word, start, dir) {
			continue
		}

		positions := make([]core.Pos, len(word))
		for i := 0; i < len(word); i++ {
			pos := start.Step(dir, i)
			grid.Set(pos, word[i])
			positions[i] = pos
		}
		return Placement{Word: word, Start: start, Dir: dir, Positions: positions}, true
	}
	return Placement{}, false
}

// fits reports whether every cell along the run is on the grid and either
// empty or already holding the required letter.
func fits(grid *core.Grid, word string, start core.Pos, dir core.Dir) bool {
	for i := 0; i < len(word); i++ {
		pos := start.Step(dir, i)
		if !grid.InBounds(pos) {
			return false
		}
		if cur := grid.At(pos); cur != core.Blank && cur != word[i] {
			return false
		}
	}
	return true
}

// fill assigns a random alphabet letter to every empty cell.
func fill(grid *core.Grid, alphabet string, rng *rand.Rand) {
	for r := 0; r < grid.Size(); r++ {
		for c := 0; c < grid.Size(); c++ {
			pos := core.P(r, c)
			if grid.At(pos) == core.Blank {
				grid.Set(pos, alphabet[rng.Intn(len(alphabet))])
			}
		}
	}
}
