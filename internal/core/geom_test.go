package core

import "testing"

func TestPosAdjacent(t *testing.T) {
	origin := P(2, 2)

	tests := []struct {
		name     string
		other    Pos
		expected bool
	}{
		{"north", P(1, 2), true},
		{"north-east", P(1, 3), true},
		{"east", P(2, 3), true},
		{"south-east", P(3, 3), true},
		{"south", P(3, 2), true},
		{"south-west", P(3, 1), true},
		{"west", P(2, 1), true},
		{"north-west", P(1, 1), true},
		{"same cell", P(2, 2), false},
		{"two rows away", P(0, 2), false},
		{"knight move", P(4, 3), false},
		{"far corner", P(0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := origin.Adjacent(tc.other)
			if result != tc.expected {
				t.Errorf("Adjacent(%v) = %v, expected %v", tc.other, result, tc.expected)
			}
			// Also test symmetry
			if tc.other.Adjacent(origin) != tc.expected {
				t.Errorf("Adjacent() (reversed) = %v, expected %v", !tc.expected, tc.expected)
			}
		})
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		a, b     Pos
		expected int
	}{
		{P(0, 0), P(0, 0), 0},
		{P(0, 0), P(1, 1), 1},
		{P(0, 0), P(2, 2), 2},
		{P(5, 1), P(2, 3), 3},
	}

	for _, tc := range tests {
		if got := tc.a.Chebyshev(tc.b); got != tc.expected {
			t.Errorf("Chebyshev(%v, %v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestDirDeltasAreUnitAndDistinct(t *testing.T) {
	if len(AllDirs) != 8 {
		t.Fatalf("AllDirs has %d directions, expected 8", len(AllDirs))
	}

	seen := make(map[[2]int]Dir)
	for _, d := range AllDirs {
		dr, dc := d.Delta()
		if dr == 0 && dc == 0 {
			t.Errorf("%v has a zero delta", d)
		}
		if Abs(dr) > 1 || Abs(dc) > 1 {
			t.Errorf("%v delta (%d,%d) is not a unit step", d, dr, dc)
		}
		key := [2]int{dr, dc}
		if prev, ok := seen[key]; ok {
			t.Errorf("%v and %v share delta (%d,%d)", prev, d, dr, dc)
		}
		seen[key] = d

		if !P(3, 3).Adjacent(P(3, 3).Step(d, 1)) {
			t.Errorf("one step %v is not adjacent", d)
		}
	}
}

func TestParseDirs(t *testing.T) {
	dirs, err := ParseDirs([]string{"n", "SE", " w ", "N"})
	if err != nil {
		t.Fatalf("ParseDirs failed: %v", err)
	}
	expected := []Dir{DirN, DirSE, DirW}
	if len(dirs) != len(expected) {
		t.Fatalf("ParseDirs returned %v, expected %v", dirs, expected)
	}
	for i := range expected {
		if dirs[i] != expected[i] {
			t.Errorf("dirs[%d] = %v, expected %v", i, dirs[i], expected[i])
		}
	}

	if _, err := ParseDirs([]string{"UP"}); err == nil {
		t.Error("ParseDirs should reject unknown names")
	}
}

func TestGridBasics(t *testing.T) {
	g := GridFromRows("CAT", "XOX", "DOG")

	if g.Size() != 3 || g.CellCount() != 9 {
		t.Fatalf("Size() = %d, CellCount() = %d, expected 3 and 9", g.Size(), g.CellCount())
	}
	if !g.Filled() {
		t.Error("grid built from full rows should be filled")
	}
	if got := g.Word([]Pos{P(0, 0), P(0, 1), P(0, 2)}); got != "CAT" {
		t.Errorf("Word() = %q, expected CAT", got)
	}
	if g.At(P(3, 0)) != Blank {
		t.Error("At() out of bounds should return Blank")
	}

	g.Set(P(-1, 0), 'Z') // ignored
	clone := g.Clone()
	clone.Set(P(1, 1), 'Q')
	if g.At(P(1, 1)) != 'O' {
		t.Error("Clone() should not share storage")
	}

	empty := NewGrid(2)
	if empty.Filled() {
		t.Error("new grid should not be filled")
	}
	if empty.String() != "..\n.." {
		t.Errorf("String() = %q, expected blank markers", empty.String())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
