package towels

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/memo"
)

// ErrNoPatterns indicates input without a pattern line.
var ErrNoPatterns = fmt.Errorf("towels: no patterns: %w", grid.ErrMalformedInput)

// Cache holds arrangement counts per design suffix. A cache is only valid for
// the pattern set it was filled with.
type Cache = memo.Cache[string, int]

// NewCache returns an empty suffix cache.
func NewCache() *Cache { return memo.New[string, int]() }

// Inventory is a parsed puzzle: available patterns and wanted designs.
type Inventory struct {
	Patterns []string
	Designs  []string
}

// Parse reads a comma-separated pattern line, a blank line, then one design
// per line.
func Parse(text string) (*Inventory, error) {
	text = strings.ReplaceAll(text, "\r", "")
	head, body, _ := strings.Cut(strings.TrimSpace(text), "\n\n")

	inv := &Inventory{}
	for _, p := range strings.Split(head, ",") {
		if p = strings.TrimSpace(p); p != "" {
			inv.Patterns = append(inv.Patterns, p)
		}
	}
	if len(inv.Patterns) == 0 {
		return nil, ErrNoPatterns
	}
	for _, d := range strings.Fields(body) {
		inv.Designs = append(inv.Designs, d)
	}
	return inv, nil
}

// Count returns the number of distinct pattern sequences that spell design.
// The empty design has exactly one arrangement. Empty patterns are ignored.
// A nil cache is allowed.
func Count(design string, patterns []string, cache *Cache) int {
	if cache == nil {
		cache = NewCache()
	}
	if design == "" {
		return 1
	}
	return cache.Do(design, func() int {
		n := 0
		for _, p := range patterns {
			if p != "" && strings.HasPrefix(design, p) {
				n += Count(design[len(p):], patterns, cache)
			}
		}
		return n
	})
}

// Decompose returns one arrangement of design as indices into patterns,
// preferring earlier patterns, and whether any arrangement exists.
func Decompose(design string, patterns []string, cache *Cache) ([]int, bool) {
	if cache == nil {
		cache = NewCache()
	}
	if Count(design, patterns, cache) == 0 {
		return nil, false
	}

	var out []int
	for design != "" {
		for i, p := range patterns {
			if p != "" && strings.HasPrefix(design, p) && Count(design[len(p):], patterns, cache) > 0 {
				out = append(out, i)
				design = design[len(p):]
				break
			}
		}
	}
	return out, true
}

// Tally returns how many designs are possible and the total number of
// arrangements across all of them, sharing one cache.
func (inv *Inventory) Tally() (possible, arrangements int) {
	cache := NewCache()
	for _, d := range inv.Designs {
		n := Count(d, inv.Patterns, cache)
		if n > 0 {
			possible++
		}
		arrangements += n
	}
	return possible, arrangements
}
