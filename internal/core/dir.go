package core

import (
	"fmt"
	"strings"
)

// Dir is one of the eight compass directions a word can run in.
type Dir uint8

const (
	DirN Dir = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

// AllDirs lists every compass direction in clockwise order starting north.
var AllDirs = []Dir{DirN, DirNE, DirE, DirSE, DirS, DirSW, DirW, DirNW}

var dirNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the compass abbreviation of the direction.
func (d Dir) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "Unknown"
}

// Delta returns the (dRow, dCol) offset for one step in this direction.
// North decreases Row, East increases Col.
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case DirN:
		return -1, 0
	case DirNE:
		return -1, 1
	case DirE:
		return 0, 1
	case DirSE:
		return 1, 1
	case DirS:
		return 1, 0
	case DirSW:
		return 1, -1
	case DirW:
		return 0, -1
	case DirNW:
		return -1, -1
	default:
		return 0, 0
	}
}

// ParseDir converts a compass abbreviation (case-insensitive) to a Dir.
func ParseDir(s string) (Dir, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range dirNames {
		if n == name {
			return Dir(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// ParseDirs converts a list of compass abbreviations, dropping duplicates.
func ParseDirs(names []string) ([]Dir, error) {
	dirs := make([]Dir, 0, len(names))
	seen := make(map[Dir]bool, len(names))
	for _, n := range names {
		d, err := ParseDir(n)
		if err != nil {
			return nil, err
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	return dirs, nil
}
