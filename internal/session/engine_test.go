package session

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/wordhunt/internal/board"
	"github.com/vovakirdan/wordhunt/internal/config"
	"github.com/vovakirdan/wordhunt/internal/core"
	"github.com/vovakirdan/wordhunt/internal/dictionary"
)

// fixedBoard hides CAT along the top row; DOG runs along the middle row
// but is not a target.
func fixedBoard() *board.Board {
	return &board.Board{
		Grid: core.GridFromRows(
			"CATX",
			"DOGY",
			"ZQRS",
			"TUVW",
		),
		Placements: []board.Placement{{
			Word:      "CAT",
			Start:     core.P(0, 0),
			Dir:       core.DirE,
			Positions: []core.Pos{core.P(0, 0), core.P(0, 1), core.P(0, 2)},
		}},
	}
}

func testOptions() config.Options {
	o := config.DefaultOptions()
	o.GridSize = 4
	return o
}

func newTestEngine(t *testing.T, opts config.Options) *Engine {
	t.Helper()
	dict := dictionary.New([]string{"CAT", "DOG", "GOD", "TAD"})
	e, err := New(dict, opts, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	e.StartBoard(fixedBoard())
	return e
}

func selectPath(t *testing.T, e *Engine, path ...core.Pos) {
	t.Helper()
	for _, p := range path {
		if !e.ExtendSelection(p) {
			t.Fatalf("ExtendSelection(%v) rejected; path %v", p, e.Selection())
		}
	}
}

func TestTargetWordBonus(t *testing.T) {
	e := newTestEngine(t, testOptions())

	selectPath(t, e, core.P(0, 0), core.P(0, 1), core.P(0, 2))
	res := e.Submit()

	if res.Kind != TargetWordFound {
		t.Fatalf("Submit() kind = %v, want TargetWordFound", res.Kind)
	}
	if res.Points != 4 || e.Score() != 4 {
		t.Errorf("points = %d, score = %d, want 4 and 4", res.Points, e.Score())
	}
	if len(e.Selection()) != 0 {
		t.Error("selection should be cleared after submit")
	}
	if p := e.Progress(); p.Found != 1 || p.Total != 1 || p.Percentage != 100 {
		t.Errorf("Progress() = %+v, want 1/1 100%%", p)
	}
}

func TestDictionaryOnlyWord(t *testing.T) {
	e := newTestEngine(t, testOptions())

	selectPath(t, e, core.P(1, 0), core.P(1, 1), core.P(1, 2))
	res := e.Submit()

	if res.Kind != ValidWord {
		t.Fatalf("Submit() kind = %v, want ValidWord", res.Kind)
	}
	if res.Points != 1 || e.Score() != 1 {
		t.Errorf("points = %d, score = %d, want 1 and 1", res.Points, e.Score())
	}
	if p := e.Progress(); p.Found != 0 {
		t.Errorf("dictionary word should not count toward progress: %+v", p)
	}
}

func TestTooShort(t *testing.T) {
	e := newTestEngine(t, testOptions())

	selectPath(t, e, core.P(0, 0), core.P(0, 1))
	res := e.Submit()

	if res.Kind != TooShort {
		t.Errorf("Submit() kind = %v, want TooShort", res.Kind)
	}
	if e.Score() != 0 {
		t.Errorf("score = %d, want 0", e.Score())
	}
	if len(e.Selection()) != 0 {
		t.Error("selection should be cleared after a failed submit")
	}
	if len(e.FoundWords()) != 0 {
		t.Error("found words should be unchanged")
	}
}

func TestRepeatFind(t *testing.T) {
	e := newTestEngine(t, testOptions())

	dog := []core.Pos{core.P(1, 0), core.P(1, 1), core.P(1, 2)}
	selectPath(t, e, dog...)
	e.Submit()

	selectPath(t, e, dog...)
	res := e.Submit()

	if res.Kind != AlreadyFound {
		t.Errorf("second Submit() kind = %v, want AlreadyFound", res.Kind)
	}
	if res.Points != 0 || e.Score() != 1 {
		t.Errorf("points = %d, score = %d, want 0 and 1", res.Points, e.Score())
	}
	if found := e.FoundWords(); len(found) != 1 || found[0] != "DOG" {
		t.Errorf("FoundWords() = %v, want [DOG]", found)
	}
}

func TestNotInDictionary(t *testing.T) {
	e := newTestEngine(t, testOptions())

	selectPath(t, e, core.P(2, 1), core.P(2, 2), core.P(2, 3))
	res := e.Submit()

	if res.Kind != NotInDictionary || e.Score() != 0 {
		t.Errorf("Submit() = %+v, want NotInDictionary with no score", res)
	}
}

func TestReversedWordFromDictionary(t *testing.T) {
	e := newTestEngine(t, testOptions())

	// GOD is DOG read backwards.
	selectPath(t, e, core.P(1, 2), core.P(1, 1), core.P(1, 0))
	if res := e.Submit(); res.Kind != ValidWord || res.Word != "GOD" {
		t.Errorf("Submit() = %+v, want ValidWord GOD", res)
	}
}

func TestSubmitEmptyPath(t *testing.T) {
	e := newTestEngine(t, testOptions())
	if res := e.Submit(); res.Kind != TooShort {
		t.Errorf("empty Submit() kind = %v, want TooShort", res.Kind)
	}
}

func TestNonAdjacentExtension(t *testing.T) {
	e := newTestEngine(t, testOptions())

	selectPath(t, e, core.P(0, 0))
	if e.ExtendSelection(core.P(2, 2)) {
		t.Error("ExtendSelection((2,2)) should be rejected")
	}
	path := e.Selection()
	if len(path) != 1 || path[0] != core.P(0, 0) {
		t.Errorf("path = %v, want [(0,0)]", path)
	}
}

func TestExtendSelectionRules(t *testing.T) {
	e := newTestEngine(t, testOptions())

	if e.ExtendSelection(core.P(-1, 0)) || e.ExtendSelection(core.P(0, 4)) {
		t.Error("out-of-bounds positions should be rejected")
	}

	selectPath(t, e, core.P(1, 1), core.P(1, 2), core.P(2, 2))

	if e.ExtendSelection(core.P(2, 2)) {
		t.Error("extending with the tail should be a no-op")
	}
	if e.ExtendSelection(core.P(1, 2)) {
		t.Error("extending with an earlier position should be rejected")
	}
	if len(e.Selection()) != 3 {
		t.Errorf("path length = %d, want 3", len(e.Selection()))
	}
	if e.CurrentWord() != "OGR" {
		t.Errorf("CurrentWord() = %q, want OGR", e.CurrentWord())
	}
}

func TestRetractAndToggle(t *testing.T) {
	e := newTestEngine(t, testOptions())

	if e.RetractLast() {
		t.Error("RetractLast on empty path should report no change")
	}

	e.Toggle(core.P(0, 0))
	e.Toggle(core.P(0, 1))
	if e.CurrentWord() != "CA" {
		t.Fatalf("CurrentWord() = %q, want CA", e.CurrentWord())
	}

	// Tapping the tail retracts it.
	if !e.Toggle(core.P(0, 1)) {
		t.Error("Toggle on tail should retract")
	}
	if e.CurrentWord() != "C" {
		t.Errorf("CurrentWord() = %q, want C", e.CurrentWord())
	}

	// A retracted position can be selected again.
	e.Toggle(core.P(0, 1))
	if !e.RetractLast() || !e.RetractLast() || e.RetractLast() {
		t.Error("RetractLast should remove exactly two positions")
	}
}

func TestSelectionInvariantsUnderRandomInput(t *testing.T) {
	e := newTestEngine(t, testOptions())
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 2000; i++ {
		p := core.P(rng.Intn(6)-1, rng.Intn(6)-1)
		switch rng.Intn(10) {
		case 0:
			e.RetractLast()
		case 1:
			e.Submit()
		default:
			e.ExtendSelection(p)
		}

		path := e.Selection()
		seen := make(map[core.Pos]bool)
		for j, pos := range path {
			if seen[pos] {
				t.Fatalf("step %d: %v repeats in %v", i, pos, path)
			}
			seen[pos] = true
			if j > 0 && !path[j-1].Adjacent(pos) {
				t.Fatalf("step %d: %v not adjacent to %v", i, pos, path[j-1])
			}
		}
	}
}

func TestScoringDeterminism(t *testing.T) {
	path := []core.Pos{core.P(0, 0), core.P(0, 1), core.P(0, 2)}

	var first Result
	for i := 0; i < 5; i++ {
		e := newTestEngine(t, testOptions())
		selectPath(t, e, path...)
		res := e.Submit()
		if i == 0 {
			first = res
			continue
		}
		if res != first {
			t.Errorf("run %d: Submit() = %+v, want %+v", i, res, first)
		}
	}
}

func TestEndSessionIdempotent(t *testing.T) {
	e := newTestEngine(t, testOptions())
	selectPath(t, e, core.P(1, 0), core.P(1, 1), core.P(1, 2))
	e.Submit()

	e.EndSession()
	once := e.Summary()
	state := e.State()

	e.EndSession()
	twice := e.Summary()

	if state != StateOver || e.State() != StateOver {
		t.Errorf("State() = %v, want Over", e.State())
	}
	if once.Score != twice.Score || len(once.Found) != len(twice.Found) {
		t.Errorf("second EndSession changed summary: %+v vs %+v", once, twice)
	}
}

func TestOverIsFrozen(t *testing.T) {
	e := newTestEngine(t, testOptions())
	e.EndSession()

	if e.ExtendSelection(core.P(0, 0)) {
		t.Error("ExtendSelection should be ignored once over")
	}
	if res := e.Submit(); res.Kind != Inactive {
		t.Errorf("Submit() kind = %v, want Inactive", res.Kind)
	}
	if e.Score() != 0 {
		t.Errorf("score = %d, want 0", e.Score())
	}
}

func TestSummary(t *testing.T) {
	e := newTestEngine(t, testOptions())
	selectPath(t, e, core.P(1, 0), core.P(1, 1), core.P(1, 2))
	e.Submit()
	e.EndSession()

	s := e.Summary()
	if s.Score != 1 || len(s.Found) != 1 || s.Found[0] != "DOG" {
		t.Errorf("Summary() = %+v", s)
	}
	if len(s.Missed) != 1 || s.Missed[0] != "CAT" {
		t.Errorf("Missed = %v, want [CAT]", s.Missed)
	}
	if s.Progress.Found != 0 || s.Progress.Total != 1 || s.Progress.Percentage != 0 {
		t.Errorf("Progress = %+v, want 0/1 0%%", s.Progress)
	}
}

func TestStartPlacesTargets(t *testing.T) {
	opts := config.DefaultOptions()
	opts.GridSize = 6
	e, err := New(dictionary.Default(), opts, rand.New(rand.NewSource(21)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if e.State() != StateIdle {
		t.Errorf("State() = %v, want Idle", e.State())
	}

	if err := e.Start([]string{"CAT", "GAME"}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if e.State() != StateActive {
		t.Errorf("State() = %v, want Active", e.State())
	}

	b := e.Board()
	p, ok := b.Placement("CAT")
	if !ok {
		t.Fatal("CAT should be placed on an empty 6x6 grid")
	}

	selectPath(t, e, p.Positions...)
	res := e.Submit()
	if res.Kind != TargetWordFound || res.Points != 4 {
		t.Errorf("Submit() = %+v, want TargetWordFound worth 4", res)
	}
}

func TestRestartResetsState(t *testing.T) {
	opts := config.DefaultOptions()
	e, err := New(dictionary.Default(), opts, rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := e.Restart(10); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}

	targets := e.TargetWords()
	if len(targets) == 0 || len(targets) > 10 {
		t.Fatalf("TargetWords() = %v, want 1..10 words", targets)
	}
	for _, w := range targets {
		if len(w) < opts.TargetMinLength {
			t.Errorf("target %q shorter than %d", w, opts.TargetMinLength)
		}
		if !dictionary.Default().Contains(w) {
			t.Errorf("target %q not in dictionary", w)
		}
	}

	p, _ := e.Board().Placement(targets[0])
	selectPath(t, e, p.Positions...)
	e.Submit()
	e.EndSession()

	if err := e.Restart(5); err != nil {
		t.Fatalf("second Restart failed: %v", err)
	}
	if e.State() != StateActive || e.Score() != 0 || len(e.FoundWords()) != 0 || len(e.Selection()) != 0 {
		t.Errorf("Restart did not reset: state %v score %d found %v", e.State(), e.Score(), e.FoundWords())
	}
	if err := e.Board().Verify(); err != nil {
		t.Errorf("restarted board invalid: %v", err)
	}
}

func TestRestartWithoutSampler(t *testing.T) {
	e, err := New(containsOnly{}, testOptions(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := e.Restart(3); !errors.Is(err, ErrNoWordSource) {
		t.Errorf("Restart() = %v, want ErrNoWordSource", err)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, testOptions(), nil); !errors.Is(err, ErrNoDictionary) {
		t.Errorf("New(nil dict) = %v, want ErrNoDictionary", err)
	}

	opts := testOptions()
	opts.GridSize = 2
	if _, err := New(dictionary.Default(), opts, nil); !errors.Is(err, config.ErrGridTooSmall) {
		t.Errorf("New(grid 2) = %v, want ErrGridTooSmall", err)
	}
}

func TestEmptyBoardDegradesGracefully(t *testing.T) {
	opts := testOptions()
	e, err := New(dictionary.Default(), opts, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := e.Start([]string{"ELEPHANT"}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if len(e.TargetWords()) != 0 {
		t.Errorf("TargetWords() = %v, want none", e.TargetWords())
	}
	if p := e.Progress(); p.Total != 0 || p.Percentage != 0 {
		t.Errorf("Progress() = %+v, want 0/0", p)
	}
	if !e.Board().Grid.Filled() {
		t.Error("grid should still be fully filled")
	}
}

func TestFailingDictionaryTreatedAsNotFound(t *testing.T) {
	e, err := New(failingDict{}, testOptions(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	e.StartBoard(fixedBoard())

	selectPath(t, e, core.P(1, 0), core.P(1, 1), core.P(1, 2))
	if res := e.Submit(); res.Kind != NotInDictionary {
		t.Errorf("Submit() kind = %v, want NotInDictionary", res.Kind)
	}

	// Targets do not depend on the dictionary.
	selectPath(t, e, core.P(0, 0), core.P(0, 1), core.P(0, 2))
	if res := e.Submit(); res.Kind != TargetWordFound {
		t.Errorf("Submit() kind = %v, want TargetWordFound", res.Kind)
	}
}

func TestTimedSession(t *testing.T) {
	opts := testOptions()
	opts.TimeLimitSeconds = 3
	e := newTestEngine(t, opts)

	if e.Remaining() != 3*time.Second {
		t.Fatalf("Remaining() = %v, want 3s", e.Remaining())
	}
	if e.Tick(time.Second) || e.Tick(time.Second) {
		t.Fatal("session ended early")
	}
	if !e.Tick(time.Second) {
		t.Fatal("third tick should end the session")
	}
	if e.State() != StateOver || e.Remaining() != 0 {
		t.Errorf("State() = %v, Remaining() = %v, want Over and 0", e.State(), e.Remaining())
	}
	if e.Tick(time.Second) {
		t.Error("tick after Over should be a no-op")
	}
}

func TestUntimedSessionIgnoresTicks(t *testing.T) {
	e := newTestEngine(t, testOptions())
	for i := 0; i < 1000; i++ {
		if e.Tick(time.Hour) {
			t.Fatal("untimed session should never end on a tick")
		}
	}
	if e.State() != StateActive {
		t.Errorf("State() = %v, want Active", e.State())
	}
}

func TestWordPoints(t *testing.T) {
	tests := []struct {
		length, base, target int
	}{
		{3, 1, 4},
		{4, 2, 6},
		{5, 3, 8},
		{8, 6, 14},
	}
	for _, tt := range tests {
		if got := WordPoints(tt.length); got != tt.base {
			t.Errorf("WordPoints(%d) = %d, want %d", tt.length, got, tt.base)
		}
		if got := TargetPoints(tt.length); got != tt.target {
			t.Errorf("TargetPoints(%d) = %d, want %d", tt.length, got, tt.target)
		}
	}
}

type containsOnly struct{}

func (containsOnly) Contains(string) bool { return false }

type failingDict struct{}

func (failingDict) Contains(string) bool { return true }

func (failingDict) Lookup(string) (bool, error) {
	return false, errors.New("word service unavailable")
}
