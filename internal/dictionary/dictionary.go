// Package dictionary provides the word-list collaborator queried by the
// session engine. Lists are immutable once built and safe to share.
package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/zyedidia/generic/mapset"
)

// MinLength is the shortest word a dictionary will hold.
const MinLength = 3

//go:embed words.txt
var embeddedWords string

// Dictionary is a read-only set-membership query over uppercase words.
type Dictionary interface {
	Contains(word string) bool
}

// Checker is implemented by dictionaries whose lookups can fail,
// such as ones backed by a remote service.
type Checker interface {
	Lookup(word string) (bool, error)
}

// Sampler is implemented by dictionaries that can supply target words.
type Sampler interface {
	Sample(rng *rand.Rand, count, minLen int) []string
}

// Set is an in-memory Dictionary.
type Set struct {
	words  mapset.Set[string]
	sorted []string
}

// New builds a Set from the given words.
// Words are uppercased; entries shorter than MinLength or containing
// non-letters are dropped.
func New(words []string) *Set {
	s := &Set{words: mapset.New[string]()}
	for _, w := range words {
		w = Normalize(w)
		if len(w) < MinLength || !isAlpha(w) || s.words.Has(w) {
			continue
		}
		s.words.Put(w)
		s.sorted = append(s.sorted, w)
	}
	sort.Strings(s.sorted)
	return s
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the embedded word list. Built once per process.
func Default() *Set {
	defaultOnce.Do(func() {
		defaultSet = New(strings.Fields(embeddedWords))
	})
	return defaultSet
}

// Load reads a newline-separated word list from a file.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: cannot open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary: cannot read %s: %w", path, err)
	}
	return s, nil
}

// Read builds a Set from a reader with one word per line.
// Blank lines and lines starting with '#' are skipped.
func Read(r io.Reader) (*Set, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(words), nil
}

// Normalize converts a word to the form dictionaries store.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Contains reports whether the word is in the set.
func (s *Set) Contains(word string) bool {
	return s.words.Has(Normalize(word))
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	return s.words.Size()
}

// Words returns every word in alphabetical order.
func (s *Set) Words() []string {
	out := make([]string, len(s.sorted))
	copy(out, s.sorted)
	return out
}

// CountByLength returns how many words exist for each length.
func (s *Set) CountByLength() map[int]int {
	counts := make(map[int]int)
	for _, w := range s.sorted {
		counts[len(w)]++
	}
	return counts
}

// Sample picks up to count distinct random words at least minLen long.
// Fewer words are returned when the set cannot supply count candidates.
func (s *Set) Sample(rng *rand.Rand, count, minLen int) []string {
	if count <= 0 {
		return nil
	}

	pool := make([]string, 0, len(s.sorted))
	for _, w := range s.sorted {
		if len(w) >= minLen {
			pool = append(pool, w)
		}
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count]
}

func isAlpha(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
