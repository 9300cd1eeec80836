// Package session owns the state of a single word hunt game: the board,
// the player's selection, found words and score.
//
// An Engine is not safe for concurrent use. The platform feeds it input
// events one at a time and renders what it returns.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/wordhunt/internal/board"
	"github.com/vovakirdan/wordhunt/internal/config"
	"github.com/vovakirdan/wordhunt/internal/core"
	"github.com/vovakirdan/wordhunt/internal/dictionary"
)

var (
	ErrNoDictionary = errors.New("session: dictionary is required")
	ErrNoWordSource = errors.New("session: dictionary cannot supply target words")
)

// Engine runs one game at a time.
type Engine struct {
	dict   dictionary.Dictionary
	opts   config.Options
	dirs   []core.Dir
	rng    *rand.Rand
	logger *log.Logger

	state     State
	board     *board.Board
	targets   []string
	targetSet mapset.Set[string]
	found     []string
	foundSet  mapset.Set[string]
	selection Selection
	score     int
	remaining time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for generation and dictionary diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an idle engine. A nil rng is seeded from the clock.
func New(dict dictionary.Dictionary, opts config.Options, rng *rand.Rand, options ...Option) (*Engine, error) {
	if dict == nil {
		return nil, ErrNoDictionary
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	dirs, err := opts.Dirs()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &Engine{
		dict:      dict,
		opts:      opts,
		dirs:      dirs,
		rng:       rng,
		logger:    log.New(io.Discard),
		targetSet: mapset.New[string](),
		foundSet:  mapset.New[string](),
		selection: NewSelection(),
	}
	for _, opt := range options {
		opt(e)
	}
	return e, nil
}

// Start begins a fresh session hiding the given words.
// Only words the generator manages to place become targets.
func (e *Engine) Start(words []string) error {
	b, err := board.Generate(words, e.opts.GridSize, e.rng,
		board.WithAlphabet(e.opts.Alphabet),
		board.WithDirections(e.dirs),
		board.WithMaxAttempts(e.opts.MaxAttempts),
		board.WithLogger(e.logger),
	)
	if err != nil {
		return fmt.Errorf("session: cannot generate board: %w", err)
	}

	if len(b.Placements) < len(words) {
		e.logger.Debug("some target words were not placed",
			"requested", len(words), "placed", len(b.Placements))
	}
	if len(b.Placements) == 0 {
		e.logger.Warn("board has no target words", "requested", len(words))
	}

	e.StartBoard(b)
	return nil
}

// StartBoard begins a fresh session on a prebuilt board.
func (e *Engine) StartBoard(b *board.Board) {
	e.board = b
	e.targets = b.Words()
	e.targetSet = mapset.New[string]()
	for _, w := range e.targets {
		e.targetSet.Put(w)
	}
	e.found = nil
	e.foundSet = mapset.New[string]()
	e.selection.Clear()
	e.score = 0
	e.remaining = e.opts.TimeLimit()
	e.state = StateActive
}

// Restart samples count new target words from the dictionary and starts
// a new session on a freshly generated board.
func (e *Engine) Restart(count int) error {
	sampler, ok := e.dict.(dictionary.Sampler)
	if !ok {
		return ErrNoWordSource
	}
	words := sampler.Sample(e.rng, count, e.opts.TargetMinLength)
	return e.Start(words)
}

// ExtendSelection appends p to the path when it is the first position or
// an unselected neighbour of the tail. Anything else is ignored.
func (e *Engine) ExtendSelection(p core.Pos) bool {
	if e.state != StateActive || !e.board.Grid.InBounds(p) {
		return false
	}
	return e.selection.Extend(p)
}

// RetractLast drops the tail of the path.
func (e *Engine) RetractLast() bool {
	if e.state != StateActive {
		return false
	}
	return e.selection.RetractLast()
}

// Toggle handles a tap: tapping the tail retracts it, tapping anything
// else tries to extend the path.
func (e *Engine) Toggle(p core.Pos) bool {
	if tail, ok := e.selection.Tail(); ok && tail == p {
		return e.RetractLast()
	}
	return e.ExtendSelection(p)
}

// Submit classifies the current word, updates the score, and always
// clears the path.
func (e *Engine) Submit() Result {
	if e.state != StateActive {
		return Result{Kind: Inactive, Score: e.score}
	}

	word := e.CurrentWord()
	e.selection.Clear()

	res := Result{Word: word}
	switch {
	case len(word) < e.opts.MinWordLength:
		res.Kind = TooShort
	case e.foundSet.Has(word):
		res.Kind = AlreadyFound
	case e.targetSet.Has(word):
		res.Kind = TargetWordFound
		res.Points = TargetPoints(len(word))
	case e.inDictionary(word):
		res.Kind = ValidWord
		res.Points = WordPoints(len(word))
	default:
		res.Kind = NotInDictionary
	}

	if res.Kind.Accepted() {
		e.score += res.Points
		e.found = append(e.found, word)
		e.foundSet.Put(word)
	}
	res.Score = e.score
	return res
}

// inDictionary treats a failing lookup as "not found".
func (e *Engine) inDictionary(word string) bool {
	if c, ok := e.dict.(dictionary.Checker); ok {
		found, err := c.Lookup(word)
		if err != nil {
			e.logger.Warn("dictionary lookup failed", "word", word, "error", err)
			return false
		}
		return found
	}
	return e.dict.Contains(word)
}

// EndSession moves an active session to Over. Calling it again is a no-op.
func (e *Engine) EndSession() {
	if e.state != StateActive {
		return
	}
	e.selection.Clear()
	e.state = StateOver
}

// Tick advances the session clock. Returns true when this tick ended
// the session. Untimed or inactive sessions ignore ticks.
func (e *Engine) Tick(elapsed time.Duration) bool {
	if e.state != StateActive || !e.opts.Timed() {
		return false
	}
	e.remaining -= elapsed
	if e.remaining > 0 {
		return false
	}
	e.remaining = 0
	e.EndSession()
	return true
}

// State returns the lifecycle phase.
func (e *Engine) State() State {
	return e.state
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// FoundWords returns accepted words in the order they were found.
func (e *Engine) FoundWords() []string {
	out := make([]string, len(e.found))
	copy(out, e.found)
	return out
}

// IsFound reports whether the word has been accepted this session.
func (e *Engine) IsFound(word string) bool {
	return e.foundSet.Has(word)
}

// TargetWords returns the words hidden on the board.
func (e *Engine) TargetWords() []string {
	out := make([]string, len(e.targets))
	copy(out, e.targets)
	return out
}

// Selection returns the current path.
func (e *Engine) Selection() []core.Pos {
	return e.selection.Positions()
}

// IsSelected reports whether p is on the current path.
func (e *Engine) IsSelected(p core.Pos) bool {
	return e.selection.Contains(p)
}

// CurrentWord returns the letters along the current path.
func (e *Engine) CurrentWord() string {
	if e.board == nil {
		return ""
	}
	return e.board.Grid.Word(e.selection.path)
}

// Board returns the current board, or nil before the first Start.
func (e *Engine) Board() *board.Board {
	return e.board
}

// Options returns the engine configuration.
func (e *Engine) Options() config.Options {
	return e.opts
}

// Remaining returns the time left, or 0 for untimed sessions.
func (e *Engine) Remaining() time.Duration {
	return e.remaining
}

// Progress counts how many target words have been found.
func (e *Engine) Progress() Progress {
	found := 0
	for _, w := range e.targets {
		if e.foundSet.Has(w) {
			found++
		}
	}
	return newProgress(found, len(e.targets))
}

// Summary returns the end-of-session report.
func (e *Engine) Summary() Summary {
	var missed []string
	for _, w := range e.targets {
		if !e.foundSet.Has(w) {
			missed = append(missed, w)
		}
	}
	return Summary{
		Score:    e.score,
		Found:    e.FoundWords(),
		Targets:  e.TargetWords(),
		Missed:   missed,
		Progress: e.Progress(),
	}
}
