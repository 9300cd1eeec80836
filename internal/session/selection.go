package session

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/wordhunt/internal/core"
)

// Selection is the player's in-progress path across the grid.
// Positions are appended and removed only at the tail, never repeat,
// and each position touches its predecessor.
type Selection struct {
	path    []core.Pos
	members mapset.Set[core.Pos]
}

// NewSelection returns an empty path.
func NewSelection() Selection {
	return Selection{members: mapset.New[core.Pos]()}
}

// Extend appends p when it is the first position or is an unselected
// neighbour of the tail. Returns whether the path changed.
func (s *Selection) Extend(p core.Pos) bool {
	if s.members.Has(p) {
		return false
	}
	if tail, ok := s.Tail(); ok && !tail.Adjacent(p) {
		return false
	}
	s.path = append(s.path, p)
	s.members.Put(p)
	return true
}

// RetractLast removes the tail. Returns false on an empty path.
func (s *Selection) RetractLast() bool {
	tail, ok := s.Tail()
	if !ok {
		return false
	}
	s.path = s.path[:len(s.path)-1]
	s.members.Remove(tail)
	return true
}

// Tail returns the last selected position.
func (s *Selection) Tail() (core.Pos, bool) {
	if len(s.path) == 0 {
		return core.Pos{}, false
	}
	return s.path[len(s.path)-1], true
}

// Contains reports whether p is on the path.
func (s *Selection) Contains(p core.Pos) bool {
	return s.members.Has(p)
}

// Len returns the number of selected positions.
func (s *Selection) Len() int {
	return len(s.path)
}

// Positions returns a copy of the path.
func (s *Selection) Positions() []core.Pos {
	out := make([]core.Pos, len(s.path))
	copy(out, s.path)
	return out
}

// Clear empties the path.
func (s *Selection) Clear() {
	for _, p := range s.path {
		s.members.Remove(p)
	}
	s.path = s.path[:0]
}
