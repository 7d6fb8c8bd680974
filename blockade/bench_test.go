package blockade_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridwalk/blockade"
	"github.com/katalvlaran/gridwalk/grid"
)

// randomDrops returns every cell of a size×size grid except the corners,
// shuffled, so some prefix of the timeline always seals the exit.
func randomDrops(size int) []grid.Position {
	rng := rand.New(rand.NewSource(42))
	drops := make([]grid.Position, 0, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if (r == 0 && c == 0) || (r == size-1 && c == size-1) {
				continue
			}
			drops = append(drops, grid.Position{Row: r, Col: c})
		}
	}
	rng.Shuffle(len(drops), func(i, j int) { drops[i], drops[j] = drops[j], drops[i] })
	return drops
}

// BenchmarkFirstBlocking bisects a 71×71 timeline.
// Complexity: O(N² log N · log D)
func BenchmarkFirstBlocking(b *testing.B) {
	drops := randomDrops(71)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = blockade.FirstBlocking(71, drops)
	}
}

// BenchmarkShortestExit searches after the first 1024 drops.
func BenchmarkShortestExit(b *testing.B) {
	drops := randomDrops(71)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = blockade.ShortestExit(71, drops, 1024)
	}
}
