package patrol_test

import (
	"testing"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/patrol"
)

// BenchmarkLoopingObstacles re-simulates the lab once per visited cell.
// Complexity: O(C·W·H·4)
func BenchmarkLoopingObstacles(b *testing.B) {
	g, err := grid.Parse(lab)
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	start, err := patrol.StartState(g)
	if err != nil {
		b.Fatalf("setup StartState failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = patrol.LoopingObstacles(g, start)
	}
}
