package stones

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/memo"
)

// Key identifies a subproblem: one stone with a number of blinks remaining.
type Key struct {
	Stone  int
	Blinks int
}

// Cache holds counts per Key.
type Cache = memo.Cache[Key, int]

// NewCache returns an empty cache.
func NewCache() *Cache { return memo.New[Key, int]() }

// Parse reads whitespace-separated non-negative integers.
func Parse(text string) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, fmt.Errorf("stones: no stones: %w", grid.ErrMalformedInput)
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("stones: bad stone %q: %w", f, grid.ErrMalformedInput)
		}
		out[i] = n
	}
	return out, nil
}

// Blink applies one rule to a single stone.
func Blink(stone int) []int {
	if stone == 0 {
		return []int{1}
	}
	if d := digits(stone); d%2 == 0 {
		div := pow10(d / 2)
		return []int{stone / div, stone % div}
	}
	return []int{stone * 2024}
}

// Count returns how many stones a single stone becomes after blinks.
// A nil cache is allowed.
func Count(stone, blinks int, cache *Cache) int {
	if blinks <= 0 {
		return 1
	}
	if cache == nil {
		cache = NewCache()
	}
	return cache.Do(Key{Stone: stone, Blinks: blinks}, func() int {
		n := 0
		for _, s := range Blink(stone) {
			n += Count(s, blinks-1, cache)
		}
		return n
	})
}

// Total sums Count over a row of stones with one shared cache.
func Total(stones []int, blinks int) int {
	cache := NewCache()
	n := 0
	for _, s := range stones {
		n += Count(s, blinks, cache)
	}
	return n
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

func pow10(n int) int {
	p := 1
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
