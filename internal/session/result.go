package session

import "math"

// State is the lifecycle phase of a session.
type State int

const (
	StateIdle State = iota
	StateActive
	StateOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActive:
		return "Active"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Kind classifies a submitted word.
type Kind int

const (
	// Inactive means the session was not accepting submissions.
	Inactive Kind = iota
	TooShort
	AlreadyFound
	TargetWordFound
	ValidWord
	NotInDictionary
)

// String returns the status line shown to the player.
func (k Kind) String() string {
	switch k {
	case Inactive:
		return "Game over"
	case TooShort:
		return "Too short"
	case AlreadyFound:
		return "Already found"
	case TargetWordFound:
		return "Target word found!"
	case ValidWord:
		return "Valid word!"
	case NotInDictionary:
		return "Not in dictionary"
	default:
		return "Unknown"
	}
}

// Accepted reports whether the word was scored.
func (k Kind) Accepted() bool {
	return k == TargetWordFound || k == ValidWord
}

// Result is returned by Submit.
type Result struct {
	Kind   Kind
	Word   string
	Points int // Score delta; 0 unless Accepted
	Score  int // Score after the submission
}

// WordPoints is the base score for an accepted word of the given length.
func WordPoints(length int) int {
	if length-2 > 1 {
		return length - 2
	}
	return 1
}

// TargetPoints is the score for a target word: base points plus a
// bonus equal to its length.
func TargetPoints(length int) int {
	return WordPoints(length) + length
}

// Progress counts found target words.
type Progress struct {
	Found      int
	Total      int
	Percentage int
}

func newProgress(found, total int) Progress {
	p := Progress{Found: found, Total: total}
	if total > 0 {
		p.Percentage = int(math.Round(float64(found) * 100 / float64(total)))
	}
	return p
}

// Summary is the frozen end-of-session report.
type Summary struct {
	Score    int
	Found    []string
	Targets  []string
	Missed   []string
	Progress Progress
}
